package rowkit

import (
	"github.com/rowkit/rowkit/record"
)

// Pluck projects the collection onto a single field, returning the values of
// every record that has the field, in collection order.
func Pluck(c record.Collection, field string) []record.Value {
	out := make([]record.Value, 0, len(c))
	for _, r := range c {
		if v, ok := r.Get(field); ok {
			out = append(out, v)
		}
	}
	return out
}

// PluckUnique projects the collection onto a single field, keeping only the
// first occurrence of each distinct value, in first-seen order.
func PluckUnique(c record.Collection, field string) []record.Value {
	seen := make(map[string]struct{})
	out := make([]record.Value, 0, len(c))
	for _, r := range c {
		v, ok := r.Get(field)
		if !ok {
			continue
		}
		key := v.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// GetMap indexes the collection by the textual form of the given field.
// Records without the field are skipped; when several records share a key,
// the last one wins. The map holds references to the live records.
func GetMap(c record.Collection, field string) map[string]*record.Record {
	out := make(map[string]*record.Record, len(c))
	for _, r := range c {
		if v, ok := r.Get(field); ok {
			out[v.Text()] = r
		}
	}
	return out
}

// SumProperty sums the numeric values of the given field across the
// collection. Non-numeric and missing values count as zero.
func SumProperty(c record.Collection, field string) float64 {
	var total float64
	for _, r := range c {
		if num, ok := r.Field(field).Number(); ok {
			total += num
		}
	}
	return total
}

// Merge enriches base with fields from overlay records sharing the same
// value at key. The result is a new collection of cloned records: for each
// base record, every overlay record whose key value is equal has its fields
// copied in (in overlay order, later matches overwriting earlier ones);
// overlay records matching no base record are appended at the end.
//
// Neither input collection is mutated.
func Merge(base, overlay record.Collection, key string) record.Collection {
	out := make(record.Collection, 0, len(base))
	matched := make([]bool, len(overlay))

	for _, b := range base {
		merged := b.Clone()
		keyVal, ok := b.Get(key)
		if ok {
			for i, o := range overlay {
				v, exists := o.Get(key)
				if !exists || !v.Equal(keyVal) {
					continue
				}
				matched[i] = true
				o.Range(func(field string, fv record.Value) bool {
					merged.Set(field, fv.Clone())
					return true
				})
			}
		}
		out = append(out, merged)
	}

	for i, o := range overlay {
		if !matched[i] {
			out = append(out, o.Clone())
		}
	}
	return out
}
