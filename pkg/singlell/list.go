// Package singlell provides a generic singly-linked list with forward
// iterators and insertion or removal after an arbitrary position.
//
// A List is not safe for concurrent use. Every access, including read-only
// traversal running next to a mutation, has to be serialized by the caller.
package singlell

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	next  *node[T]
	value T
}

// List owns a chain of nodes anchored by an embedded sentinel. The zero
// value is an empty list ready to use. A List must not be copied after
// first use, use Clone instead.
type List[T any] struct {
	head node[T]
	size int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// From builds a list holding values in the given order.
func From[T any](values ...T) *List[T] {
	tmp := New[T]()
	tmp.appendAll(func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	})

	return tmp
}

// FromSeq builds a list from seq, consuming it once.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	tmp := New[T]()
	tmp.appendAll(seq)

	return tmp
}

// Collect builds a list from a source that may fail. On the first error
// the partially built list is dropped and only the error is returned.
func Collect[T any](seq iter.Seq2[T, error]) (*List[T], error) {
	tmp := New[T]()
	last := &tmp.head

	for v, err := range seq {
		if err != nil {
			return nil, err
		}

		last.next = &node[T]{value: v}
		last = last.next
		tmp.size++
	}

	return tmp, nil
}

func (l *List[T]) appendAll(seq iter.Seq[T]) {
	last := &l.head
	for last.next != nil {
		last = last.next
	}

	for v := range seq {
		last.next = &node[T]{value: v}
		last = last.next
		l.size++
	}
}

// Clone returns a deep copy of the list. Elements are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	return FromSeq(l.All())
}

// CloneFunc copies the list through copyFn. If copyFn fails the copy is
// discarded and the error is returned.
func (l *List[T]) CloneFunc(copyFn func(T) (T, error)) (*List[T], error) {
	return Collect(func(yield func(T, error) bool) {
		for n := l.head.next; n != nil; n = n.next {
			v, err := copyFn(n.value)
			if !yield(v, err) || err != nil {
				return
			}
		}
	})
}

// Assign replaces the contents of l with a copy of src.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}

	tmp := src.Clone()
	l.Swap(tmp)
}

// AssignFunc replaces the contents of l with a copy of src made by copyFn.
// l is left untouched when copyFn fails.
func (l *List[T]) AssignFunc(src *List[T], copyFn func(T) (T, error)) error {
	if l == src {
		return nil
	}

	tmp, err := src.CloneFunc(copyFn)
	if err != nil {
		return err
	}

	l.Swap(tmp)

	return nil
}

// Swap exchanges the contents of two lists in constant time.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

func (l *List[T]) PushFront(v T) {
	l.head.next = &node[T]{next: l.head.next, value: v}
	l.size++
}

// InsertAfter links v right after pos and returns an iterator to it.
// pos must belong to l and must not be past the end.
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	prev := pos.at()
	if prev == nil {
		panic(ErrPastTheEnd)
	}

	prev.next = &node[T]{next: prev.next, value: v}
	l.size++

	return Iterator[T]{cursor[T]{node: prev.next}}
}

// PopFront removes the first element. The list must not be empty.
func (l *List[T]) PopFront() {
	first := l.head.next
	if first == nil {
		panic(ErrEmptyList)
	}

	l.head.next = first.next
	first.next = nil
	l.size--
}

// EraseAfter removes the element following pos and returns an iterator to
// the element that now follows pos.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	prev := pos.at()
	if prev == nil || prev.next == nil {
		panic(ErrNoSuccessor)
	}

	removed := prev.next
	prev.next = removed.next
	removed.next = nil
	l.size--

	return Iterator[T]{cursor[T]{node: prev.next}}
}

// Clear drops every node in chain order.
func (l *List[T]) Clear() {
	for l.head.next != nil {
		n := l.head.next
		l.head.next = n.next
		n.next = nil
	}

	l.size = 0
}

func (l *List[T]) GetSize() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{node: l.head.next}}
}

func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{node: l.head.next}}
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// BeforeBegin points at the sentinel. It is the position to pass to
// InsertAfter and EraseAfter to work on the first element.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{cursor[T]{node: &l.head}}
}

func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{node: &l.head}}
}

// All iterates over the values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}

	return values
}

func (l *List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')

	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			b.WriteByte(' ')
		}

		fmt.Fprint(&b, n.value)
	}

	b.WriteByte(']')

	return b.String()
}
