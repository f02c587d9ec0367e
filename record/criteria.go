package record

// Criteria is a set of field constraints combined with AND logic.
//
// A non-array value requires exact equality at that field; an array value is
// a membership test, satisfied when the record's value equals any element.
// The empty criteria set matches every record (vacuous truth over zero
// constraints).
type Criteria map[string]Value

// Patch is a set of field writes applied to matching records by Update.
type Patch map[string]Value

// Matches checks if the provided record satisfies every constraint.
//
// A record without the constrained field never matches. Equality is exact;
// there is no coercion between numbers and numeric-looking text.
func (c Criteria) Matches(r *Record) bool {
	for key, want := range c {
		got, exists := r.Get(key)
		if !exists {
			return false
		}
		if members, ok := want.AsArray(); ok {
			if !containsValue(members, got) {
				return false
			}
			continue
		}
		if !got.Equal(want) {
			return false
		}
	}
	return true
}

func containsValue(members []Value, v Value) bool {
	for _, m := range members {
		if v.Equal(m) {
			return true
		}
	}
	return false
}
