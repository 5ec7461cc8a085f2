package list_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-fundamentals/list"
)

// ExampleList_Append shows structural sharing: both lists reuse the [2 1] tail.
func ExampleList_Append() {
	base := list.Of(1, 2)
	a := base.Append(3)
	b := base.Append(4)
	fmt.Println(base, a, b)
	// Output: [2 1] [3 2 1] [4 2 1]
}

// ExampleDoubleList walks a list forward and backward.
func ExampleDoubleList() {
	dl := list.NewDoubleList[string]().Append("x").Append("y").Append("z")
	fmt.Println(dl.Values(), dl.Backward())
	// Output: [z y x] [x y z]
}
