package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Only forward-pointing offsets are needed: each undirected neighbor pair
	// is visited once from its earlier cell in row-major order.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	} else {
		offsets = [][2]int{{1, 0}, {0, 1}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		Variant:         opts.Variant,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether the in-bounds cell (x,y) meets LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.CellValues[y][x] >= gg.LandThreshold
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func (gg *GridGraph) checkCell(x, y int) error {
	if !gg.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrCellOutOfRange, x, y, gg.Width, gg.Height)
	}

	return nil
}
