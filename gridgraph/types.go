// Package gridgraph defines core types and options for the gridgraph package.
package gridgraph

import "github.com/katalvlaran/lvlath-fundamentals/unionfind"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Variant selects the disjoint-set implementation used for labeling.
	Variant unionfind.Variant
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4, Variant=quick-union.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
		Variant:       unionfind.VariantQuickUnion,
	}
}

// GridGraph treats a 2D integer grid as a graph. Its cells are immutable once built.
// Connected caches its labeling, so a GridGraph is not safe for concurrent use.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	Variant         unionfind.Variant
	neighborOffsets [][2]int
	labels          unionfind.UF // built by the first Connected call
}
