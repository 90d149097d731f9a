package column

import "iter"

// BoolColumn is a column over a bit-packed Bitset backing store.
//
// Because packed bits cannot yield addressable element references, the
// column keeps an unpacked shadow sequence mirroring the backing store.
// Value re-reads the backing store and writes through the shadow on
// every call, so reads always reflect the backing store's current
// content while Ref can hand out a real *bool. The shadow is a private
// cache: it is repopulated on construction and Clone, and lazily grown
// whenever the backing store has gained rows since the last read.
type BoolColumn struct {
	meta   MetaColumn
	data   *Bitset
	shadow []bool
}

// NewBool creates a column over the given backing bitset. The handle
// must not be nil; passing nil is a programming error and panics.
// Construction copies every element into the shadow, making it O(n)
// even though the backing store itself is shared.
func NewBool(meta MetaColumn, data *Bitset) *BoolColumn {
	if data == nil {
		panic("column: nil backing store")
	}
	c := &BoolColumn{meta: meta, data: data}
	c.fillShadow()
	return c
}

func (c *BoolColumn) fillShadow() {
	c.shadow = make([]bool, c.data.Len())
	for i := range c.shadow {
		c.shadow[i] = c.data.Get(i)
	}
}

// growShadow extends the shadow to cover backing-store growth since the
// last read. It runs before the bounds check, so the shadow may grow
// even on a failing access; that is benign cache growth, not data.
func (c *BoolColumn) growShadow() {
	if n := c.data.Len(); len(c.shadow) < n {
		c.shadow = append(c.shadow, make([]bool, n-len(c.shadow))...)
	}
}

// Value returns the value at the given row, refreshed from the backing
// store through the shadow.
func (c *BoolColumn) Value(row int) (bool, error) {
	c.growShadow()

	n := c.data.Len()
	if row < 0 || row >= n {
		return false, errRowRange(row, n)
	}

	c.shadow[row] = c.data.Get(row)
	return c.shadow[row], nil
}

// Ref returns an addressable reference to the value at the given row.
// The pointer targets the shadow slot, which holds the backing store's
// value as of this call.
func (c *BoolColumn) Ref(row int) (*bool, error) {
	if _, err := c.Value(row); err != nil {
		return nil, err
	}
	return &c.shadow[row], nil
}

// ValueAt returns the value at the given row as an untyped value.
func (c *BoolColumn) ValueAt(row int) (interface{}, error) {
	v, err := c.Value(row)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// RowCount returns the current number of rows.
func (c *BoolColumn) RowCount() int {
	return c.data.Len()
}

// Reset empties the backing bitset and clears the shadow.
func (c *BoolColumn) Reset() {
	c.data.Reset()
	c.shadow = nil
}

// Data returns the backing bitset handle for bulk population.
func (c *BoolColumn) Data() *Bitset {
	return c.data
}

// Clone returns a column sharing this column's backing store. The clone
// gets its own freshly copied shadow, so cloning is O(n).
func (c *BoolColumn) Clone() *BoolColumn {
	n := &BoolColumn{meta: c.meta, data: c.data}
	n.fillShadow()
	return n
}

// All returns a forward iterator over the column values.
func (c *BoolColumn) All() iter.Seq[bool] {
	return c.data.Values()
}

// Backward returns a reverse iterator over the column values.
func (c *BoolColumn) Backward() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := c.data.Len() - 1; i >= 0; i-- {
			if !yield(c.data.Get(i)) {
				return
			}
		}
	}
}

// Name returns the column name.
func (c *BoolColumn) Name() string { return c.meta.Name }

// Length returns the declared maximum length.
func (c *BoolColumn) Length() uint { return c.meta.Length }

// Precision returns the declared precision.
func (c *BoolColumn) Precision() uint { return c.meta.Precision }

// Position returns the zero-based ordinal position.
func (c *BoolColumn) Position() uint { return c.meta.Position }

// Type returns the declared data type tag.
func (c *BoolColumn) Type() ColumnDataType { return c.meta.Type }

var _ Column = (*BoolColumn)(nil)
