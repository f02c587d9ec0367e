package record

import (
	"reflect"
	"testing"
	"time"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Bool(true)},
		{"string", "hi", String("hi")},
		{"int", 42, Int(42)},
		{"int64", int64(42), Int(42)},
		{"float64", 2.5, Float(2.5)},
		{"value passthrough", Int(1), Int(1)},
		{"string slice", []string{"a", "b"}, Strings("a", "b")},
		{"any slice", []any{1, "x"}, Array([]Value{Int(1), String("x")})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FromAny(%v) = %s, want %s", tt.in, got.Key(), tt.want.Key())
			}
		})
	}
}

func TestFromAnyTime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got, err := FromAny(ts)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := got.AsTime(); !ok || !v.Equal(ts) {
		t.Errorf("FromAny(time) = %v", got.Kind)
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("unsupported type must error")
	}
	if _, err := FromAny(uint64(1) << 63); err == nil {
		t.Error("out-of-range uint64 must error")
	}
}

func TestRecordFromAny(t *testing.T) {
	r, err := RecordFromAny(map[string]any{
		"name": "Alice",
		"age":  30,
	})
	if err != nil {
		t.Fatal(err)
	}
	// Sorted key order keeps the result deterministic.
	if got := r.Fields(); !reflect.DeepEqual(got, []string{"age", "name"}) {
		t.Errorf("Fields() = %v", got)
	}
	if v, _ := r.Field("age").AsInt64(); v != 30 {
		t.Errorf("age = %d", v)
	}
}

func TestCollectionFromAny(t *testing.T) {
	c, err := CollectionFromAny([]map[string]any{
		{"a": 1},
		{"a": 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 2 {
		t.Fatalf("len = %d", len(c))
	}

	if _, err := CollectionFromAny([]map[string]any{{"a": struct{}{}}}); err == nil {
		t.Error("conversion failure must propagate")
	}
}

func TestCriteriaFromAny(t *testing.T) {
	crit, err := CriteriaFromAny(map[string]any{
		"category": "Fruit",
		"item":     []string{"Apple", "Banana"},
	})
	if err != nil {
		t.Fatal(err)
	}
	rec := New().Set("category", String("Fruit")).Set("item", String("Banana"))
	if !crit.Matches(rec) {
		t.Error("converted criteria should match")
	}
}
