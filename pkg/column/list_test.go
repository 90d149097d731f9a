package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBasics(t *testing.T) {
	l := NewList("a", "b", "c")

	require.Equal(t, 3, l.Len())
	assert.Equal(t, "a", l.Front().Value)
	assert.Equal(t, "c", l.Back().Value)
	assert.Equal(t, "b", l.Front().Next().Value)
	assert.Equal(t, "b", l.Back().Prev().Value)

	l.PushFront("z")
	assert.Equal(t, "z", l.Front().Value)
	assert.Equal(t, 4, l.Len())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
}

func TestListColumnTraversalBranches(t *testing.T) {
	values := []int64{10, 20, 30, 40, 50, 60, 70}
	col := NewListColumn(MetaColumn{Name: "n", Type: TypeInt64}, NewList(values...))

	size := col.RowCount()
	require.Equal(t, len(values), size)

	// Head, tail and midpoint exercise both the forward and the
	// backward traversal.
	for _, row := range []int{0, size - 1, size / 2} {
		v, err := col.Value(row)
		require.NoError(t, err)
		assert.Equal(t, values[row], v, "row %d", row)
	}

	// Every position, both branches included.
	for row, want := range values {
		v, err := col.Value(row)
		require.NoError(t, err)
		assert.Equal(t, want, v, "row %d", row)
	}
}

func TestListColumnRangeError(t *testing.T) {
	col := NewListColumn(MetaColumn{Name: "n", Type: TypeInt64}, NewList[int64](1, 2, 3))

	_, err := col.Value(3)
	require.Error(t, err)
	assert.True(t, IsRangeError(err))

	_, err = col.Value(-1)
	assert.True(t, IsRangeError(err))

	assert.Equal(t, 3, col.RowCount(), "failed access must not alter row count")
}

func TestListColumnNilBackingStorePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewListColumn[int64](MetaColumn{Name: "x"}, nil)
	})
}

func TestListColumnResetAndRepopulate(t *testing.T) {
	col := NewListColumn(MetaColumn{Name: "s", Type: TypeString}, NewList("a", "b"))

	col.Reset()
	assert.Equal(t, 0, col.RowCount())

	_, err := col.Value(0)
	assert.True(t, IsRangeError(err))

	col.Data().PushBack("c")
	require.Equal(t, 1, col.RowCount())

	v, err := col.Value(0)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestListColumnSharedBackingStore(t *testing.T) {
	col := NewListColumn(MetaColumn{Name: "n", Type: TypeInt64}, NewList[int64](1))
	copied := col.Clone()

	col.Data().PushBack(2)
	assert.Equal(t, 2, copied.RowCount())

	v, err := copied.Value(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestListColumnIteration(t *testing.T) {
	col := NewListColumn(MetaColumn{Name: "s", Type: TypeString}, NewList("x", "y", "z"))

	var forward []string
	for v := range col.All() {
		forward = append(forward, v)
	}
	assert.Equal(t, []string{"x", "y", "z"}, forward)

	var reverse []string
	for v := range col.Backward() {
		reverse = append(reverse, v)
	}
	assert.Equal(t, []string{"z", "y", "x"}, reverse)
}

func TestVariantsAgreeOnSameContent(t *testing.T) {
	// The same logical content must read identically from the slice and
	// list variants, and from the bool variant for boolean content.
	ints := []int64{1, 2, 3, 4, 5}
	sliceCol := NewSlice(MetaColumn{Name: "n", Type: TypeInt64}, &ints)
	listCol := NewListColumn(MetaColumn{Name: "n", Type: TypeInt64}, NewList(ints...))

	for row := range ints {
		sv, err := sliceCol.Value(row)
		require.NoError(t, err)
		lv, err := listCol.Value(row)
		require.NoError(t, err)
		assert.Equal(t, sv, lv, "row %d", row)
	}

	bools := []bool{true, false, true}
	boolSlice := NewSlice(MetaColumn{Name: "f", Type: TypeBool}, &bools)
	boolPacked := NewBool(MetaColumn{Name: "f", Type: TypeBool}, NewBitset(bools...))

	for row := range bools {
		sv, err := boolSlice.Value(row)
		require.NoError(t, err)
		pv, err := boolPacked.Value(row)
		require.NoError(t, err)
		assert.Equal(t, sv, pv, "row %d", row)
	}
}
