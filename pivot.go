package rowkit

import (
	"github.com/rowkit/rowkit/record"
)

// Pivot regroups a collection along two dynamic axes in a single pass:
// records are grouped into rows by their value at rowKey, each row gains one
// field per distinct value seen at colKey, and the numeric value at valueKey
// is summed into the matching cell.
//
// Rows appear in first-seen order of their rowKey value, and each row carries
// only the columns actually observed for it; absent columns are not padded
// with zero. Duplicate (row, column) pairs accumulate by addition.
//
// A record without the rowKey or colKey field groups under the null value. The
// value at valueKey must be numeric on every record; any other kind (including
// a missing field) aborts the whole call with a *ValueTypeError carrying the
// record's position, and no partial result is returned.
//
// Column fields are named by the textual form of the colKey value, so distinct
// values that render the same text (Int(1) and String("1"), or Float(1) and
// Int(1)) merge into one column, and a colKey value whose text equals rowKey
// replaces the row label field. Pick a rowKey that cannot collide with the
// column values when that matters.
func Pivot(c record.Collection, rowKey, colKey, valueKey string) (record.Collection, error) {
	rows := make(map[string]*record.Record)
	order := make([]string, 0, 8)

	for i, r := range c {
		num, ok := r.Field(valueKey).Number()
		if !ok {
			return nil, &ValueTypeError{Field: valueKey, Index: i, Kind: r.Field(valueKey).Kind}
		}

		rowVal, exists := r.Get(rowKey)
		if !exists {
			rowVal = record.Null()
		}
		key := rowVal.Key()
		acc, seen := rows[key]
		if !seen {
			acc = record.New().Set(rowKey, rowVal)
			rows[key] = acc
			order = append(order, key)
		}

		colVal, exists := r.Get(colKey)
		if !exists {
			colVal = record.Null()
		}
		col := colVal.Text()
		total := num
		if cur, ok := acc.Field(col).Number(); ok {
			total += cur
		}
		acc.Set(col, record.Float(total))
	}

	out := make(record.Collection, 0, len(order))
	for _, key := range order {
		out = append(out, rows[key])
	}
	return out, nil
}

// Summary is a one-dimensional group-by-sum: records are grouped by their
// value at groupKey (first-seen order) and their values at valueKey are
// summed per group. Unlike Pivot it follows SumProperty's lenient rule:
// non-numeric and missing values count as zero instead of aborting.
//
// Each result record has the groupKey field and the sum under valueKey.
func Summary(c record.Collection, groupKey, valueKey string) record.Collection {
	totals := make(map[string]float64)
	groups := make(map[string]record.Value)
	order := make([]string, 0, 8)

	for _, r := range c {
		groupVal, exists := r.Get(groupKey)
		if !exists {
			groupVal = record.Null()
		}
		key := groupVal.Key()
		if _, seen := groups[key]; !seen {
			groups[key] = groupVal
			order = append(order, key)
		}
		if num, ok := r.Field(valueKey).Number(); ok {
			totals[key] += num
		}
	}

	out := make(record.Collection, 0, len(order))
	for _, key := range order {
		out = append(out, record.New().
			Set(groupKey, groups[key]).
			Set(valueKey, record.Float(totals[key])))
	}
	return out
}
