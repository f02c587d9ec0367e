package record

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unique"

	gojson "github.com/goccy/go-json"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind. The zero Value has this kind;
	// lookups of absent fields return it.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindTime represents a timestamp value.
	KindTime
	// KindArray represents an array value.
	KindArray
)

// String returns a short lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// Value is a small typed scalar used for record fields and criteria.
//
// The representation is designed to make matching fast and predictable:
// no reflection and no fmt-based stringification.
//
// NOTE: This is also used for serialization; keep it stable.
type Value struct {
	Kind Kind                  `json:"k"`
	I64  int64                 `json:"i,omitempty"`
	F64  float64               `json:"f,omitempty"`
	s    unique.Handle[string] `json:"-"` // Private interned string
	B    bool                  `json:"b,omitempty"`
	t    time.Time             `json:"-"`
	A    []Value               `json:"a,omitempty"`
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Time returns a timestamp Value.
func Time(v time.Time) Value { return Value{Kind: KindTime, t: v} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// Strings returns an array Value built from string elements.
func Strings(v ...string) Value {
	arr := make([]Value, len(v))
	for i := range v {
		arr[i] = String(v[i])
	}
	return Array(arr)
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsTime returns the timestamp value if Kind is KindTime.
func (v Value) AsTime() (time.Time, bool) {
	if v.Kind != KindTime {
		return time.Time{}, false
	}
	return v.t, true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// IsNumber reports whether the value is numeric (int or float).
func (v Value) IsNumber() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// Number returns the value as a float64 if it is numeric.
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.I64), true
	case KindFloat:
		return v.F64, true
	default:
		return 0, false
	}
}

// StringValue returns the string value if Kind is KindString, otherwise empty string.
func (v Value) StringValue() string {
	if v.Kind == KindString {
		return v.s.Value()
	}
	return ""
}

// Equal compares two values for equality.
//
// Equality is exact: a number never equals a string containing the same
// digits. Int and Float unify numerically since both model the same
// "number" scalar; integers are compared exactly when both sides are
// integers.
func (v Value) Equal(o Value) bool {
	if v.Kind == KindNull && o.Kind == KindNull {
		return true
	}
	if v.Kind == KindNull || o.Kind == KindNull {
		return false
	}

	if v.IsNumber() && o.IsNumber() {
		// Prefer exact int compare when possible.
		if v.Kind == KindInt && o.Kind == KindInt {
			return v.I64 == o.I64
		}
		a, _ := v.Number()
		b, _ := o.Number()
		return a == b
	}

	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.B == o.B
	case KindTime:
		return v.t.Equal(o.t)
	case KindArray:
		if len(v.A) != len(o.A) {
			return false
		}
		for i := range v.A {
			if !v.A[i].Equal(o.A[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Key returns a stable string representation for use in maps.
//
// It is intended for internal grouping (pivot accumulators, uniqueness
// checks) and must remain stable across versions.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s.Value()
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindTime:
		return "t:" + strconv.FormatInt(v.t.UnixNano(), 10)
	case KindArray:
		if len(v.A) == 0 {
			return "a:"
		}
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Key()
		}
		return "a:" + strings.Join(parts, "\x1f")
	default:
		return "invalid"
	}
}

// Text returns the plain textual form of the value, as written to tabular
// output. Null and invalid values render as the empty string; array elements
// are joined with commas.
func (v Value) Text() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'f', -1, 64)
	case KindString:
		return v.s.Value()
	case KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindArray:
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Text()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// Clone creates a deep copy of a Value, including nested arrays.
func (v Value) Clone() Value {
	if v.Kind != KindArray || len(v.A) == 0 {
		// Simple values are copied by value semantics
		return v
	}

	arrayCopy := make([]Value, len(v.A))
	for i := range v.A {
		arrayCopy[i] = v.A[i].Clone()
	}

	return Value{
		Kind: v.Kind,
		I64:  v.I64,
		F64:  v.F64,
		s:    v.s,
		B:    v.B,
		t:    v.t,
		A:    arrayCopy,
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	type Alias Value
	aux := &struct {
		S string `json:"s,omitempty"`
		T string `json:"t,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(&v),
	}
	if v.Kind == KindString {
		aux.S = v.s.Value()
	}
	if v.Kind == KindTime {
		aux.T = v.t.Format(time.RFC3339Nano)
	}
	return gojson.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	type Alias Value
	aux := &struct {
		S string `json:"s,omitempty"`
		T string `json:"t,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(v),
	}
	if err := gojson.Unmarshal(data, &aux); err != nil {
		return err
	}
	if v.Kind == KindString {
		v.s = unique.Make(aux.S)
	}
	if v.Kind == KindTime {
		t, err := time.Parse(time.RFC3339Nano, aux.T)
		if err != nil {
			return err
		}
		v.t = t
	}
	return nil
}
