package tabular

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/oleg578/swiftcsv"

	"github.com/rowkit/rowkit/record"
)

// ErrEmptyTable is returned when writing a collection with no records; the
// format has no representation for an empty table.
var ErrEmptyTable = errors.New("tabular: cannot serialize empty collection")

// Write serializes the collection: a header line taken from the first
// record's field order, then one line per record. Every value is quoted so
// embedded delimiters survive; numeric values keep their plain textual form
// and are read back as numbers.
//
// Records lacking a header field contribute an empty value for it; fields
// outside the header order are not written.
//
// Round-tripping through Parse is lossy at the edges: Parse trims surrounding
// whitespace even inside quotes, so values padded with leading or trailing
// spaces come back stripped, and values that parse as numbers come back as
// record.Float rather than record.String.
func Write(w io.Writer, c record.Collection) error {
	if len(c) == 0 {
		return ErrEmptyTable
	}

	cw := swiftcsv.NewWriter(w)
	cw.AlwaysQuote = true

	fields := c[0].Fields()
	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("tabular: write header: %w", err)
	}

	row := make([]string, len(fields))
	for i, r := range c {
		for j, f := range fields {
			row[j] = r.Field(f).Text()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("tabular: write record %d: %w", i, err)
		}
	}
	return cw.Flush()
}

// Marshal serializes the collection to a byte slice.
func Marshal(c record.Collection) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
