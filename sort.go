package rowkit

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/rowkit/rowkit/record"
)

// Order selects the direction of a Sort.
type Order string

const (
	// Ascending sorts smallest first. It is the default when Order is empty.
	Ascending Order = "asc"
	// Descending sorts largest first.
	Descending Order = "desc"
)

// Sort returns a new collection ordered by the given keys in priority order.
// The first key with unequal values decides each comparison; ties across all
// keys preserve the input's relative order (the sort is stable). The input
// collection is never mutated.
//
// Values compare natively per key: numerically when both sides are numbers,
// lexicographically when both are strings. An unordered mixture of kinds
// falls back to lexicographic comparison of the textual form.
func Sort(c record.Collection, keys []string, order Order) (record.Collection, error) {
	switch order {
	case "", Ascending:
		order = Ascending
	case Descending:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrder, order)
	}
	if len(keys) == 0 {
		return nil, ErrNoSortKeys
	}

	out := make(record.Collection, len(c))
	copy(out, c)
	slices.SortStableFunc(out, func(a, b *record.Record) int {
		for _, key := range keys {
			if d := compareField(a.Field(key), b.Field(key)); d != 0 {
				if order == Descending {
					return -d
				}
				return d
			}
		}
		return 0
	})
	return out, nil
}

// SortBy sorts by a single key.
func SortBy(c record.Collection, key string, order Order) (record.Collection, error) {
	return Sort(c, []string{key}, order)
}

func compareField(a, b record.Value) int {
	if an, ok := a.Number(); ok {
		if bn, ok := b.Number(); ok {
			return cmp.Compare(an, bn)
		}
	}
	if as, ok := a.AsString(); ok {
		if bs, ok := b.AsString(); ok {
			return strings.Compare(as, bs)
		}
	}
	if at, ok := a.AsTime(); ok {
		if bt, ok := b.AsTime(); ok {
			return at.Compare(bt)
		}
	}
	return strings.Compare(a.Text(), b.Text())
}
