package singlell

// Position is a place in a list that InsertAfter and EraseAfter accept.
// Both Iterator and ConstIterator are positions.
type Position[T any] interface {
	at() *node[T]
}

// cursor holds the traversal and comparison logic shared by Iterator and
// ConstIterator. A nil node is the past-the-end position.
type cursor[T any] struct {
	node *node[T]
}

func (c cursor[T]) at() *node[T] {
	return c.node
}

// Equal reports whether both positions refer to the same node, or are both
// past the end.
func (c cursor[T]) Equal(other Position[T]) bool {
	return c.node == other.at()
}

// Valid reports whether the cursor refers to a node.
func (c cursor[T]) Valid() bool {
	return c.node != nil
}

// Value returns the referenced element. Panics past the end.
func (c cursor[T]) Value() T {
	if c.node == nil {
		panic(ErrPastTheEnd)
	}

	return c.node.value
}

// Lookup is Value for callers that want to probe: it reports false instead
// of panicking past the end.
func (c cursor[T]) Lookup() (T, bool) {
	if c.node == nil {
		var result T
		return result, false
	}

	return c.node.value, true
}

func (c cursor[T]) next() cursor[T] {
	if c.node == nil {
		panic(ErrPastTheEnd)
	}

	return cursor[T]{node: c.node.next}
}

// Iterator is a forward cursor that can modify the element it refers to.
// It does not own the node: once the node is erased the iterator dangles.
type Iterator[T any] struct {
	cursor[T]
}

// Next returns an iterator to the successor without moving it.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.next()}
}

// Advance moves the iterator to the successor.
func (it *Iterator[T]) Advance() {
	it.cursor = it.next()
}

// Ptr gives access to the element in place, nil past the end.
func (it Iterator[T]) Ptr() *T {
	if it.node == nil {
		return nil
	}

	return &it.node.value
}

func (it Iterator[T]) Set(v T) {
	if it.node == nil {
		panic(ErrPastTheEnd)
	}

	it.node.value = v
}

// Const converts the iterator into a read-only one over the same node.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T](it)
}

// ConstIterator is a forward cursor with read-only access to elements.
type ConstIterator[T any] struct {
	cursor[T]
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{it.next()}
}

func (it *ConstIterator[T]) Advance() {
	it.cursor = it.next()
}
