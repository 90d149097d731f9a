package column

import "iter"

// Bitset is a bit-packed boolean sequence storing 64 values per word.
// Packed bits cannot yield addressable element references, which is why
// BoolColumn keeps an unpacked shadow alongside it.
type Bitset struct {
	words []uint64
	count int
}

// NewBitset creates a bitset holding the given values.
func NewBitset(values ...bool) *Bitset {
	b := &Bitset{}
	for _, v := range values {
		b.Append(v)
	}
	return b
}

// Append adds a value at the end of the sequence.
func (b *Bitset) Append(v bool) {
	word := b.count / 64
	bit := uint(b.count % 64)

	if word >= len(b.words) {
		b.words = append(b.words, 0)
	}

	if v {
		b.words[word] |= 1 << bit
	}
	b.count++
}

// Get returns the value at index i. The index must be within
// [0, Len()); violating that is a programming error and panics.
func (b *Bitset) Get(i int) bool {
	if i < 0 || i >= b.count {
		panic("column: bitset index out of range")
	}
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

// Set overwrites the value at index i. The index must be within
// [0, Len()); violating that is a programming error and panics.
func (b *Bitset) Set(i int, v bool) {
	if i < 0 || i >= b.count {
		panic("column: bitset index out of range")
	}
	if v {
		b.words[i/64] |= 1 << uint(i%64)
	} else {
		b.words[i/64] &^= 1 << uint(i%64)
	}
}

// Len returns the number of values in the sequence.
func (b *Bitset) Len() int {
	return b.count
}

// Reset empties the sequence and releases its storage.
func (b *Bitset) Reset() {
	b.words = nil
	b.count = 0
}

// Values returns a forward iterator over the sequence.
func (b *Bitset) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(b.Get(i)) {
				return
			}
		}
	}
}
