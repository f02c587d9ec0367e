package record

import "testing"

func TestCriteriaMatches(t *testing.T) {
	rec := New().
		Set("category", String("Fruit")).
		Set("item", String("Apple")).
		Set("quantity", Int(10))

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{
			name:     "empty criteria matches everything",
			criteria: Criteria{},
			want:     true,
		},
		{
			name:     "single equality match",
			criteria: Criteria{"category": String("Fruit")},
			want:     true,
		},
		{
			name:     "single equality mismatch",
			criteria: Criteria{"category": String("Vegetable")},
			want:     false,
		},
		{
			name: "conjunction all satisfied",
			criteria: Criteria{
				"category": String("Fruit"),
				"quantity": Int(10),
			},
			want: true,
		},
		{
			name: "conjunction one fails",
			criteria: Criteria{
				"category": String("Fruit"),
				"quantity": Int(11),
			},
			want: false,
		},
		{
			name:     "membership hit",
			criteria: Criteria{"item": Strings("Apple", "Banana")},
			want:     true,
		},
		{
			name:     "membership miss",
			criteria: Criteria{"item": Strings("Carrot", "Potato")},
			want:     false,
		},
		{
			name:     "membership is exact too",
			criteria: Criteria{"quantity": Array([]Value{String("10")})},
			want:     false,
		},
		{
			name:     "missing field never matches",
			criteria: Criteria{"color": String("red")},
			want:     false,
		},
		{
			name:     "numeric criterion does not match text digits",
			criteria: Criteria{"item": Int(10)},
			want:     false,
		},
		{
			name:     "text criterion does not match number",
			criteria: Criteria{"quantity": String("10")},
			want:     false,
		},
		{
			name:     "int criterion matches float field",
			criteria: Criteria{"quantity": Float(10.0)},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Matches(rec); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCriteriaNoSideEffects(t *testing.T) {
	rec := New().Set("a", Int(1))
	crit := Criteria{"a": Int(1)}
	crit.Matches(rec)
	if rec.Len() != 1 {
		t.Error("Matches must not mutate the record")
	}
}
