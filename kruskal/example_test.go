package kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-fundamentals/kruskal"
)

// ExampleMST runs Kruskal on a 4-vertex "letter envelope":
//
//	0—1 (4), 1—2 (2), 2—3 (5), 3—0 (4), 0—2 (1), 1—3 (3).
//
// The MST is {0—2, 2—1, 1—3} with total weight 6.
func ExampleMST() {
	edges := []kruskal.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 0, V: 2, Weight: 1},
		{U: 2, V: 1, Weight: 2},
		{U: 1, V: 3, Weight: 3},
		{U: 2, V: 3, Weight: 5},
		{U: 3, V: 0, Weight: 4},
	}

	mst, total, err := kruskal.MST(4, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range mst {
		fmt.Printf(" %d-%d", e.U, e.V)
	}
	fmt.Println()
	// Output: Total: 6, Edges: 0-2 2-1 1-3
}

// ExampleMST_disconnected shows the error for an empty vertex set.
func ExampleMST_disconnected() {
	_, _, err := kruskal.MST(0, nil)
	fmt.Println(err)
	// Output: kruskal: graph is disconnected
}
