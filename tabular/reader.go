// Package tabular parses and serializes the line-delimited tabular format:
// comma-separated values whose first line is the header.
//
// Parsing is strict: a row whose field count differs from the header aborts
// the whole parse. Values are trimmed of surrounding whitespace; a value
// that fully parses as a number becomes numeric, everything else stays
// text. There is no convention to force text typing, so numeric-looking
// text such as a zip code with a leading zero is read back as a number;
// this is a known ambiguity of the format.
package tabular

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oleg578/swiftcsv"

	"github.com/rowkit/rowkit/record"
)

var (
	// ErrMissingHeader is returned when the input contains no header line.
	ErrMissingHeader = errors.New("tabular: input has no header line")
)

// RowWidthError indicates a data row whose field count differs from the
// header's. The whole parse is aborted; no partial collection is returned.
type RowWidthError struct {
	Line         int
	HeaderFields int
	RowFields    int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("tabular: line %d has %d fields, header has %d",
		e.Line, e.RowFields, e.HeaderFields)
}

// Parse reads the full tabular input into a collection. The first line is
// the header; each subsequent line becomes one record whose fields follow
// the header order.
func Parse(r io.Reader) (record.Collection, error) {
	cr := swiftcsv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("tabular: read header: %w", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	var out record.Collection
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("tabular: line %d: %w", line, err)
		}
		if len(row) != len(names) {
			return nil, &RowWidthError{
				Line:         line,
				HeaderFields: len(names),
				RowFields:    len(row),
			}
		}

		rec := record.New()
		for i, raw := range row {
			rec.Set(names[i], inferValue(strings.TrimSpace(raw)))
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseBytes parses tabular data held in memory.
func ParseBytes(data []byte) (record.Collection, error) {
	return Parse(bytes.NewReader(data))
}

// ParseString parses tabular data held in a string.
func ParseString(s string) (record.Collection, error) {
	return Parse(strings.NewReader(s))
}

// inferValue types a trimmed field: a value that fully parses as a number
// becomes a Float, everything else stays a String.
func inferValue(s string) record.Value {
	if s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return record.Float(f)
		}
	}
	return record.String(s)
}
