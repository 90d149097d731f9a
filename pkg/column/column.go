package column

import (
	"github.com/colkit/colkit/pkg/errors"
)

// Column is the container-agnostic read contract shared by all column
// variants. Typed access lives on the concrete types; ValueAt is the
// untyped path used by result-set code that holds mixed column kinds.
type Column interface {
	// Name returns the column name
	Name() string
	// Length returns the declared maximum length
	Length() uint
	// Precision returns the declared precision
	Precision() uint
	// Position returns the zero-based ordinal position
	Position() uint
	// Type returns the declared data type tag
	Type() ColumnDataType
	// RowCount returns the current number of rows
	RowCount() int
	// ValueAt returns the value at the given row, or a range error
	ValueAt(row int) (interface{}, error)
	// Reset empties the backing store, releasing its memory where the
	// storage shape permits
	Reset()
}

// errRowRange builds the single out-of-range error kind every variant
// presents for an invalid row access.
func errRowRange(row, rows int) error {
	return errors.Newf(errors.ErrorTypeRange, "row %d out of range [0, %d)", row, rows).
		WithDetail("row", row).
		WithDetail("rows", rows)
}

// IsRangeError reports whether err is a row-out-of-range error.
func IsRangeError(err error) bool {
	return errors.IsType(err, errors.ErrorTypeRange)
}
