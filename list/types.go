package list

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyList indicates an operation that needs at least one element.
	ErrEmptyList = errors.New("list: list is empty")

	// ErrNodeOutOfRange indicates a NodeID that is not part of the DoubleList.
	ErrNodeOutOfRange = errors.New("list: node id out of range")
)

// NodeID addresses a node inside a DoubleList arena.
type NodeID int

// None marks the absence of a link.
const None NodeID = -1

// format renders values as "[a b c]".
func format[T any](values []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
