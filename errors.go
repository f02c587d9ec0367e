package rowkit

import (
	"errors"
	"fmt"

	"github.com/rowkit/rowkit/record"
)

var (
	// ErrNilCollection is returned when a mutating operation receives a nil
	// collection pointer.
	ErrNilCollection = errors.New("collection must not be nil")
	// ErrNilCriteria is returned when criteria are nil. An empty, non-nil
	// criteria set is valid and matches everything.
	ErrNilCriteria = errors.New("criteria must not be nil")
	// ErrNilPatch is returned when Update receives a nil patch.
	ErrNilPatch = errors.New("patch must not be nil")
	// ErrNilTransform is returned when Transform receives a nil function.
	ErrNilTransform = errors.New("transform func must not be nil")
	// ErrNoSortKeys is returned when Sort receives no sort keys.
	ErrNoSortKeys = errors.New("at least one sort key is required")
	// ErrInvalidOrder is returned for a sort order other than Ascending or
	// Descending.
	ErrInvalidOrder = errors.New("invalid sort order")
)

// ValueTypeError indicates that a record carried a non-numeric value where
// aggregation requires a number. The whole operation is aborted; no partial
// result is produced.
type ValueTypeError struct {
	Field string
	Index int
	Kind  record.Kind
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("record %d: field %q is %s, not numeric", e.Index, e.Field, e.Kind)
}
