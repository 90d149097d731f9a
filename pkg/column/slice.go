package column

import "iter"

// SliceColumn is a column over a slice backing store. The backing slice
// is held through a shared handle: copies of the column (and Clone)
// observe mutations made through any copy's Data() accessor.
type SliceColumn[T any] struct {
	meta MetaColumn
	data *[]T
}

// NewSlice creates a column over the given backing slice. The handle
// must not be nil; passing nil is a programming error and panics.
func NewSlice[T any](meta MetaColumn, data *[]T) *SliceColumn[T] {
	if data == nil {
		panic("column: nil backing store")
	}
	return &SliceColumn[T]{meta: meta, data: data}
}

// Value returns the value at the given row.
func (c *SliceColumn[T]) Value(row int) (T, error) {
	d := *c.data
	if row < 0 || row >= len(d) {
		var zero T
		return zero, errRowRange(row, len(d))
	}
	return d[row], nil
}

// ValueAt returns the value at the given row as an untyped value.
func (c *SliceColumn[T]) ValueAt(row int) (interface{}, error) {
	v, err := c.Value(row)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// RowCount returns the current number of rows.
func (c *SliceColumn[T]) RowCount() int {
	return len(*c.data)
}

// Reset replaces the backing slice with a nil one, releasing previously
// reserved capacity rather than just truncating it.
func (c *SliceColumn[T]) Reset() {
	*c.data = nil
}

// Data returns the backing slice handle for bulk population. The caller
// is trusted to keep row counts consistent with sibling columns.
func (c *SliceColumn[T]) Data() *[]T {
	return c.data
}

// Clone returns a column sharing this column's backing store.
func (c *SliceColumn[T]) Clone() *SliceColumn[T] {
	return &SliceColumn[T]{meta: c.meta, data: c.data}
}

// All returns a forward iterator over the column values. Each call
// yields a fresh cursor positioned at the first row.
func (c *SliceColumn[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range *c.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over the column values.
func (c *SliceColumn[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		d := *c.data
		for i := len(d) - 1; i >= 0; i-- {
			if !yield(d[i]) {
				return
			}
		}
	}
}

// Name returns the column name.
func (c *SliceColumn[T]) Name() string { return c.meta.Name }

// Length returns the declared maximum length.
func (c *SliceColumn[T]) Length() uint { return c.meta.Length }

// Precision returns the declared precision.
func (c *SliceColumn[T]) Precision() uint { return c.meta.Precision }

// Position returns the zero-based ordinal position.
func (c *SliceColumn[T]) Position() uint { return c.meta.Position }

// Type returns the declared data type tag.
func (c *SliceColumn[T]) Type() ColumnDataType { return c.meta.Type }

var _ Column = (*SliceColumn[string])(nil)
