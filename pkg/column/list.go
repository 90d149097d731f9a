package column

import "iter"

// Node is an element of a List.
type Node[T any] struct {
	// Value is the payload carried by this node
	Value      T
	next, prev *Node[T]
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a typed doubly linked list used as a column backing store.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *Node[T]
	size       int
}

// NewList creates a list holding the given values in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// PushBack appends a value at the tail and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{Value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
	return n
}

// PushFront prepends a value at the head and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
	return n
}

// Front returns the head node, or nil when the list is empty.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the tail node, or nil when the list is empty.
func (l *List[T]) Back() *Node[T] { return l.tail }

// Len returns the number of values in the list.
func (l *List[T]) Len() int { return l.size }

// Clear empties the list.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// ListColumn is a column over a doubly linked list backing store.
// Random access is O(n); it exists for contract compatibility with the
// other variants where a list happens to be the population shape.
type ListColumn[T any] struct {
	meta MetaColumn
	data *List[T]
}

// NewListColumn creates a column over the given backing list. The
// handle must not be nil; passing nil is a programming error and panics.
func NewListColumn[T any](meta MetaColumn, data *List[T]) *ListColumn[T] {
	if data == nil {
		panic("column: nil backing store")
	}
	return &ListColumn[T]{meta: meta, data: data}
}

// Value returns the value at the given row. Rows in the first half of
// the list are reached walking forward from the head, the rest walking
// backward from the tail, halving the average traversal cost.
func (c *ListColumn[T]) Value(row int) (T, error) {
	var zero T

	n := c.data.Len()
	if row < 0 || row >= n {
		return zero, errRowRange(row, n)
	}

	if row <= n/2 {
		for node, i := c.data.Front(), 0; node != nil; node, i = node.next, i+1 {
			if i == row {
				return node.Value, nil
			}
		}
	} else {
		steps := n - row
		for node, i := c.data.Back(), 1; node != nil; node, i = node.prev, i+1 {
			if i == steps {
				return node.Value, nil
			}
		}
	}

	// Unreachable after the bounds check above; kept to satisfy the
	// traversal's exhaustion path with the same error kind.
	return zero, errRowRange(row, n)
}

// ValueAt returns the value at the given row as an untyped value.
func (c *ListColumn[T]) ValueAt(row int) (interface{}, error) {
	v, err := c.Value(row)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// RowCount returns the current number of rows.
func (c *ListColumn[T]) RowCount() int {
	return c.data.Len()
}

// Reset empties the backing list. List storage has no reserved capacity
// to shrink, so clearing is sufficient.
func (c *ListColumn[T]) Reset() {
	c.data.Clear()
}

// Data returns the backing list handle for bulk population.
func (c *ListColumn[T]) Data() *List[T] {
	return c.data
}

// Clone returns a column sharing this column's backing store.
func (c *ListColumn[T]) Clone() *ListColumn[T] {
	return &ListColumn[T]{meta: c.meta, data: c.data}
}

// All returns a forward iterator over the column values.
func (c *ListColumn[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := c.data.Front(); node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over the column values.
func (c *ListColumn[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := c.data.Back(); node != nil; node = node.prev {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Name returns the column name.
func (c *ListColumn[T]) Name() string { return c.meta.Name }

// Length returns the declared maximum length.
func (c *ListColumn[T]) Length() uint { return c.meta.Length }

// Precision returns the declared precision.
func (c *ListColumn[T]) Precision() uint { return c.meta.Precision }

// Position returns the zero-based ordinal position.
func (c *ListColumn[T]) Position() uint { return c.meta.Position }

// Type returns the declared data type tag.
func (c *ListColumn[T]) Type() ColumnDataType { return c.meta.Type }

var _ Column = (*ListColumn[int])(nil)
