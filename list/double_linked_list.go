package list

import "fmt"

// link stores a NodeID shifted by one so that the zero value means "no node".
type link int

func linkTo(id NodeID) link { return link(id + 1) }

func (l link) id() NodeID { return NodeID(l) - 1 }

// dnode is one arena slot; next and prev point into DoubleList.nodes.
type dnode[T any] struct {
	data T
	next link
	prev link
}

// DoubleList is a doubly linked list whose nodes live in a single slice.
// Nodes are never removed, so a NodeID stays valid for the list's lifetime.
// The zero value is an empty list ready to use.
type DoubleList[T any] struct {
	nodes []dnode[T]
	head  link
	tail  link
}

// NewDoubleList returns an empty list.
func NewDoubleList[T any]() *DoubleList[T] {
	return &DoubleList[T]{}
}

// Append stores data in a new node that becomes the head. The previous
// head, if any, gets its prev link pointed back at the new node.
// Returns the receiver for chaining.
// Complexity: amortized O(1).
func (dl *DoubleList[T]) Append(data T) *DoubleList[T] {
	id := NodeID(len(dl.nodes))
	dl.nodes = append(dl.nodes, dnode[T]{data: data, next: dl.head})
	if dl.head != 0 {
		dl.nodes[dl.head.id()].prev = linkTo(id)
	} else {
		dl.tail = linkTo(id)
	}
	dl.head = linkTo(id)

	return dl
}

// Len returns the number of nodes.
func (dl *DoubleList[T]) Len() int { return len(dl.nodes) }

// Head returns the id of the first node.
func (dl *DoubleList[T]) Head() (NodeID, error) {
	if dl.head == 0 {
		return None, ErrEmptyList
	}

	return dl.head.id(), nil
}

// Tail returns the id of the last node.
func (dl *DoubleList[T]) Tail() (NodeID, error) {
	if dl.tail == 0 {
		return None, ErrEmptyList
	}

	return dl.tail.id(), nil
}

func (dl *DoubleList[T]) check(id NodeID) error {
	if id < 0 || int(id) >= len(dl.nodes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, id, len(dl.nodes))
	}

	return nil
}

// Value returns the data stored at id.
func (dl *DoubleList[T]) Value(id NodeID) (T, error) {
	if err := dl.check(id); err != nil {
		var zero T
		return zero, err
	}

	return dl.nodes[id].data, nil
}

// Next returns the id following id, or None at the tail.
func (dl *DoubleList[T]) Next(id NodeID) (NodeID, error) {
	if err := dl.check(id); err != nil {
		return None, err
	}

	return dl.nodes[id].next.id(), nil
}

// Prev returns the id preceding id, or None at the head.
func (dl *DoubleList[T]) Prev(id NodeID) (NodeID, error) {
	if err := dl.check(id); err != nil {
		return None, err
	}

	return dl.nodes[id].prev.id(), nil
}

// Values walks next links from head to tail.
func (dl *DoubleList[T]) Values() []T {
	out := make([]T, 0, len(dl.nodes))
	for l := dl.head; l != 0; l = dl.nodes[l.id()].next {
		out = append(out, dl.nodes[l.id()].data)
	}

	return out
}

// Backward walks prev links from tail to head.
func (dl *DoubleList[T]) Backward() []T {
	out := make([]T, 0, len(dl.nodes))
	for l := dl.tail; l != 0; l = dl.nodes[l.id()].prev {
		out = append(out, dl.nodes[l.id()].data)
	}

	return out
}

// String renders the list head first, e.g. "[3 2 1]".
func (dl *DoubleList[T]) String() string {
	return format(dl.Values())
}
