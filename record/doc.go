// Package record provides the typed data model for rowkit: schemaless
// records with ordered fields and a small tagged scalar Value.
//
// # Value Types
//
// Field values can be:
//
//   - String: record.String("Apple")
//   - Int: record.Int(2024)
//   - Float: record.Float(3.14)
//   - Bool: record.Bool(true)
//   - Time: record.Time(time.Now())
//   - Array: record.Strings("a", "b")
//
// Example:
//
//	rec := record.New().
//	    Set("category", record.String("Fruit")).
//	    Set("quantity", record.Int(10))
//
// # Criteria
//
// Criteria constrain fields with AND logic; an array value is a membership
// test:
//
//	crit := record.Criteria{
//	    "category": record.String("Fruit"),
//	    "item":     record.Strings("Apple", "Banana"),
//	}
//	crit.Matches(rec)
//
// Equality is exact: record.Int(30) never matches record.String("30").
package record
