package rowkit

import (
	"github.com/rowkit/rowkit/record"
)

// Filter returns a new collection containing exactly the records that match
// the criteria, preserving input order. The input collection and its records
// are not mutated; the result shares record pointers with the input.
func Filter(c record.Collection, criteria record.Criteria) (record.Collection, error) {
	if criteria == nil {
		return nil, ErrNilCriteria
	}
	out := make(record.Collection, 0, len(c))
	for _, r := range c {
		if criteria.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Update writes every patch field into each record matching the criteria,
// overwriting existing fields and adding new ones. Records are mutated in
// place; collection length and order are unchanged.
func Update(c record.Collection, criteria record.Criteria, patch record.Patch) error {
	if criteria == nil {
		return ErrNilCriteria
	}
	if patch == nil {
		return ErrNilPatch
	}
	for _, r := range c {
		if !criteria.Matches(r) {
			continue
		}
		for k, v := range patch {
			r.Set(k, v)
		}
	}
	return nil
}

// Erase removes every record matching the criteria from the collection in
// place, preserving the relative order of the survivors. Adjacent runs of
// matching records are handled like any others; no record is skipped or
// removed twice.
func Erase(c *record.Collection, criteria record.Criteria) error {
	if c == nil {
		return ErrNilCollection
	}
	if criteria == nil {
		return ErrNilCriteria
	}
	kept := (*c)[:0]
	for _, r := range *c {
		if !criteria.Matches(r) {
			kept = append(kept, r)
		}
	}
	// Clear the tail so erased records are not retained by the backing array.
	tail := (*c)[len(kept):]
	for i := range tail {
		tail[i] = nil
	}
	*c = kept
	return nil
}

// Transform applies fn to each record matching the criteria, in order.
// Like Update it mutates records in place; fn receives the live record.
func Transform(c record.Collection, criteria record.Criteria, fn func(*record.Record)) error {
	if criteria == nil {
		return ErrNilCriteria
	}
	if fn == nil {
		return ErrNilTransform
	}
	for _, r := range c {
		if criteria.Matches(r) {
			fn(r)
		}
	}
	return nil
}
