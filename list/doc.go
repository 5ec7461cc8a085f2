// Package list provides two small linked-list structures that explore
// ownership of nodes:
//
//   - List[T] — a persistent (immutable) singly linked list. Append never
//     modifies the receiver; it returns a new list whose head is the new
//     value and whose tail is the old list, so many lists can share a tail.
//
//   - DoubleList[T] — a doubly linked list stored as an arena: every node
//     lives in one backing slice and links are indices into it. Forward and
//     backward links are plain integers, so there is no reference cycle to
//     break and no weak back-pointer to maintain.
//
// Both structures insert at the head, so Values() lists the most recently
// appended element first.
//
// Errors:
//
//   - ErrEmptyList: Head/Tail on an empty list.
//   - ErrNodeOutOfRange: a NodeID that does not belong to the DoubleList.
//
// Neither type is safe for concurrent mutation. A List[T] value is immutable
// and may be read from many goroutines.
package list
