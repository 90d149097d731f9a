package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsetAcrossWordBoundaries(t *testing.T) {
	b := &Bitset{}

	// 130 values spans three words.
	want := make([]bool, 130)
	for i := range want {
		want[i] = i%3 == 0
		b.Append(want[i])
	}

	require.Equal(t, 130, b.Len())
	for i, v := range want {
		assert.Equal(t, v, b.Get(i), "index %d", i)
	}
}

func TestBitsetSet(t *testing.T) {
	b := NewBitset(false, false, false)

	b.Set(1, true)
	assert.False(t, b.Get(0))
	assert.True(t, b.Get(1))
	assert.False(t, b.Get(2))

	b.Set(1, false)
	assert.False(t, b.Get(1))
}

func TestBitsetOutOfRangePanics(t *testing.T) {
	b := NewBitset(true)

	assert.Panics(t, func() { b.Get(1) })
	assert.Panics(t, func() { b.Get(-1) })
	assert.Panics(t, func() { b.Set(1, true) })
}

func TestBitsetReset(t *testing.T) {
	b := NewBitset(true, false, true)

	b.Reset()
	assert.Equal(t, 0, b.Len())

	b.Append(true)
	require.Equal(t, 1, b.Len())
	assert.True(t, b.Get(0))
}

func TestBitsetValues(t *testing.T) {
	b := NewBitset(true, false, true)

	var got []bool
	for v := range b.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []bool{true, false, true}, got)
}
