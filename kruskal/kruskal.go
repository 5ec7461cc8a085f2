package kruskal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

// MST computes the Minimum Spanning Tree of n vertices connected by edges.
//
// Steps:
//  1. Apply options.
//  2. n == 0 → ErrDisconnected; n == 1 → empty tree, weight 0.
//  3. Copy the edges, dropping self-loops.
//  4. Stable-sort them by weight.
//  5. Build a UF of n singletons with the selected variant.
//  6. For each edge (u,v): if !Connected(u,v), Union(u,v) and keep the edge;
//     stop at n−1 kept edges.
//  7. Fewer than n−1 kept edges → ErrDisconnected.
//  8. Return the tree and its total weight.
//
// Endpoints are validated by the UF as edges are examined; an invalid one is
// reported as ErrVertexOutOfRange. Edges left over once the tree is complete
// are not examined.
func MST(n int, edges []Edge, opts ...Option) ([]Edge, int64, error) {
	// 1. Apply options over the defaults.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Validate: an empty vertex set has no spanning tree.
	if n <= 0 {
		return nil, 0, ErrDisconnected
	}

	// 3. Collect edges, skipping self-loops.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			// a self-loop never joins two components, but its endpoint must still exist
			if e.U < 0 || e.U >= n {
				return nil, 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, e.U)
			}
			continue
		}
		sorted = append(sorted, e)
	}
	// 4. Sort by ascending weight; the stable sort keeps input order among ties.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 5. Initialize the disjoint set with n singletons.
	uf, err := unionfind.New(n, unionfind.WithVariant(o.Variant))
	if err != nil {
		return nil, 0, err
	}

	// 6. Build the tree: keep each edge that joins two components.
	mst := make([]Edge, 0, n-1)
	var total int64
	for _, e := range sorted {
		if len(mst) == n-1 {
			break
		}
		same, err := uf.Connected(e.U, e.V)
		if err != nil {
			return nil, 0, vertexErr(err, e)
		}
		if same {
			continue
		}
		if err := uf.Union(e.U, e.V); err != nil {
			return nil, 0, vertexErr(err, e)
		}
		mst = append(mst, e)
		total += e.Weight
	}

	// 7. Fewer than n-1 edges means the graph was disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	// 8. Return the tree and its total weight.
	return mst, total, nil
}

func vertexErr(err error, e Edge) error {
	if errors.Is(err, unionfind.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: edge %d-%d", ErrVertexOutOfRange, e.U, e.V)
	}

	return err
}
