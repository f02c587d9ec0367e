package record

import (
	"fmt"
	"sort"
	"time"
)

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for user input and legacy APIs.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(^uint32(0)) {
			// Avoid silently truncating large values.
			return Value{}, fmt.Errorf("record uint64 out of range: %d", x)
		}
		return Int(int64(x)), nil
	case time.Time:
		return Time(x), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	case []int:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int(int64(x[i]))
		}
		return Array(arr), nil
	case []float64:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Float(x[i])
		}
		return Array(arr), nil
	default:
		return Value{}, fmt.Errorf("unsupported record value type %T", v)
	}
}

// RecordFromAny converts a legacy map[string]any into a typed Record.
//
// Go maps are unordered, so fields are inserted in sorted key order to keep
// the resulting field order deterministic.
func RecordFromAny(m map[string]any) (*Record, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := New()
	for _, k := range keys {
		v, err := FromAny(m[k])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		r.Set(k, v)
	}
	return r, nil
}

// CollectionFromAny converts a slice of legacy map[string]any documents into
// a typed Collection.
func CollectionFromAny(ms []map[string]any) (Collection, error) {
	c := make(Collection, 0, len(ms))
	for i, m := range ms {
		r, err := RecordFromAny(m)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		c = append(c, r)
	}
	return c, nil
}

// CriteriaFromAny converts a legacy map[string]any constraint set into typed
// Criteria. Slice values become membership constraints.
func CriteriaFromAny(m map[string]any) (Criteria, error) {
	c := make(Criteria, len(m))
	for k, raw := range m {
		v, err := FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("criterion %q: %w", k, err)
		}
		c[k] = v
	}
	return c, nil
}
