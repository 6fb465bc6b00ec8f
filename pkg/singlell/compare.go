package singlell

import "cmp"

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	x, y := a.head.next, b.head.next
	for x != nil && y != nil {
		if !eq(x.value, y.value) {
			return false
		}

		x, y = x.next, y.next
	}

	return x == nil && y == nil
}

func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// Less compares a and b lexicographically. A proper prefix is less than
// the longer list.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

// LessFunc is Less with a custom strict weak ordering.
func LessFunc[T any](a, b *List[T], less func(T, T) bool) bool {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if less(x.value, y.value) {
			return true
		}

		if less(y.value, x.value) {
			return false
		}
	}

	return x == nil && y != nil
}

func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal
// to, or greater than b.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}
