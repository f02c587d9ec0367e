package record

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is an ordered mapping from field name to Value.
//
// Records have no declared schema: the field set may vary freely between
// records in the same collection. Field order is insertion order and is
// preserved by serialization; overwriting a field keeps its original
// position.
type Record struct {
	om *orderedmap.OrderedMap[string, Value]
}

// New creates an empty record.
func New() *Record {
	return &Record{om: orderedmap.New[string, Value]()}
}

// Set stores a field value, creating the field at the end of the field
// order if it is new. It returns the record for chaining.
func (r *Record) Set(key string, v Value) *Record {
	r.om.Set(key, v)
	return r
}

// Get returns the field value and whether the field exists.
func (r *Record) Get(key string) (Value, bool) {
	if r == nil || r.om == nil {
		return Value{}, false
	}
	return r.om.Get(key)
}

// Field returns the field value, or the zero Value (KindInvalid) when the
// field is absent.
func (r *Record) Field(key string) Value {
	v, _ := r.Get(key)
	return v
}

// Has reports whether the field exists.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Delete removes a field, reporting whether it existed.
func (r *Record) Delete(key string) bool {
	if r == nil || r.om == nil {
		return false
	}
	_, ok := r.om.Delete(key)
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil || r.om == nil {
		return 0
	}
	return r.om.Len()
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	if r == nil || r.om == nil {
		return nil
	}
	names := make([]string, 0, r.om.Len())
	for p := r.om.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// Range calls fn for each field in insertion order until fn returns false.
func (r *Record) Range(fn func(key string, v Value) bool) {
	if r == nil || r.om == nil {
		return
	}
	for p := r.om.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// Clone creates a deep copy of the record.
//
// This is the safe default to prevent shared mutation between derived
// collections. Values are deep copied, including arrays.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	clone := New()
	r.Range(func(key string, v Value) bool {
		clone.Set(key, v.Clone())
		return true
	})
	return clone
}

// MarshalJSON implements json.Marshaler, emitting fields in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil || r.om == nil {
		return []byte("{}"), nil
	}
	return r.om.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler, preserving document order.
func (r *Record) UnmarshalJSON(data []byte) error {
	if r.om == nil {
		r.om = orderedmap.New[string, Value]()
	}
	return r.om.UnmarshalJSON(data)
}

// Collection is an ordered sequence of records. Order is caller-meaningful:
// read operations preserve it, Sort produces a new sequence in the requested
// order, and Update/Erase mutate records or the sequence in place.
//
// Concurrent mutation of the same collection is a caller responsibility;
// operations take no locks.
type Collection []*Record

// Clone creates a deep copy of the collection and every record in it.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, r := range c {
		out[i] = r.Clone()
	}
	return out
}
