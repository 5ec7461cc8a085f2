package list

import "iter"

// node is an immutable cell; next is shared by every list built on top of it.
type node[T any] struct {
	data T
	next *node[T]
	size int
}

// List is a persistent singly linked list. The zero value is an empty list.
type List[T any] struct {
	head *node[T]
}

// Empty returns an empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of builds a list by appending values in order, so the last value becomes the head.
func Of[T any](values ...T) List[T] {
	l := Empty[T]()
	for _, v := range values {
		l = l.Append(v)
	}

	return l
}

// Append returns a new list with data at the head and l as its tail.
// l itself is not modified.
// Complexity: O(1).
func (l List[T]) Append(data T) List[T] {
	return List[T]{head: &node[T]{data: data, next: l.head, size: l.Len() + 1}}
}

// Head returns the first element or ErrEmptyList.
func (l List[T]) Head() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.data, nil
}

// Tail returns the list without its head, sharing the remaining nodes.
func (l List[T]) Tail() (List[T], error) {
	if l.head == nil {
		return l, ErrEmptyList
	}

	return List[T]{head: l.head.next}, nil
}

// Len returns the number of elements. Complexity: O(1).
func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}

	return l.head.size
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool { return l.head == nil }

// All iterates from head to last element.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Values returns the elements from head to last.
func (l List[T]) Values() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders the list head first, e.g. "[3 2 1]".
func (l List[T]) String() string {
	return format(l.Values())
}
