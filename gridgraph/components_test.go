package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-fundamentals/gridgraph"
	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build is a helper returning a GridGraph with default options and the given connectivity/variant.
func build(t *testing.T, grid [][]int, conn gridgraph.Connectivity, v unionfind.Variant) *gridgraph.GridGraph {
	t.Helper()
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = conn
	opts.Variant = v
	gg, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)

	return gg
}

var allVariants = []unionfind.Variant{unionfind.VariantQuickUnion, unionfind.VariantQuickFind}

// TestConnectedComponents_Simple4 tests a 4×3 grid with orthogonal connectivity.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: islands {1,2,4,5} and {10,11}.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	for _, v := range allVariants {
		t.Run(string(v), func(t *testing.T) {
			gg := build(t, grid, gridgraph.Conn4, v)
			comps, err := gg.ConnectedComponents()
			require.NoError(t, err)
			assert.Equal(t, [][]int{{1, 2, 4, 5}, {10, 11}}, comps)
		})
	}
}

// TestConnectedComponents_Diagonal8 uses an X-shaped grid: with Conn8 all nine
// land cells touch diagonally, with Conn4 every cell is isolated.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	for _, v := range allVariants {
		t.Run(string(v), func(t *testing.T) {
			comps, err := build(t, grid, gridgraph.Conn8, v).ConnectedComponents()
			require.NoError(t, err)
			require.Len(t, comps, 1)
			assert.Len(t, comps[0], 9)

			comps, err = build(t, grid, gridgraph.Conn4, v).ConnectedComponents()
			require.NoError(t, err)
			assert.Len(t, comps, 9)
		})
	}
}

// TestConnectedComponents_AntiDiagonal makes sure the (-1,+1) offset is covered under Conn8.
func TestConnectedComponents_AntiDiagonal(t *testing.T) {
	grid := [][]int{
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
	}
	comps, err := build(t, grid, gridgraph.Conn8, unionfind.VariantQuickUnion).ConnectedComponents()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 4, 6}}, comps)
}

// TestConnectedComponents_EdgeCases covers all-water and single-cell grids.
func TestConnectedComponents_EdgeCases(t *testing.T) {
	comps, err := build(t, [][]int{{0, 0}, {0, 0}}, gridgraph.Conn4, unionfind.VariantQuickUnion).ConnectedComponents()
	require.NoError(t, err)
	assert.Empty(t, comps)

	comps, err = build(t, [][]int{{0, 1}}, gridgraph.Conn4, unionfind.VariantQuickFind).ConnectedComponents()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, comps)
}

// TestConnectedComponents_Threshold raises LandThreshold so low cells become water.
func TestConnectedComponents_Threshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 2
	gg, err := gridgraph.NewGridGraph([][]int{{2, 1, 3}}, opts)
	require.NoError(t, err)

	comps, err := gg.ConnectedComponents()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {2}}, comps)
}

// TestNewGridGraph_Invalid ensures bad inputs are rejected.
func TestNewGridGraph_Invalid(t *testing.T) {
	_, err := gridgraph.NewGridGraph(nil, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewGridGraph([][]int{{1}, {}}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	opts := gridgraph.DefaultGridOptions()
	opts.Variant = "weighted"
	gg, err := gridgraph.NewGridGraph([][]int{{1}}, opts)
	require.NoError(t, err)
	_, err = gg.ConnectedComponents()
	assert.ErrorIs(t, err, unionfind.ErrUnknownVariant)
}

// TestNewGridGraph_DeepCopy checks that later edits to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	grid[0][1] = 0
	ok, err := gg.Connected(0, 0, 1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestGridGraph_Connected checks island membership and coordinate validation.
func TestGridGraph_Connected(t *testing.T) {
	gg := build(t, [][]int{
		{1, 1, 0},
		{0, 0, 0},
		{0, 1, 1},
	}, gridgraph.Conn4, unionfind.VariantQuickUnion)

	ok, err := gg.Connected(0, 0, 1, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gg.Connected(0, 0, 2, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = gg.Connected(3, 0, 0, 0)
	assert.ErrorIs(t, err, gridgraph.ErrCellOutOfRange)

	x, y := gg.Coordinate(gg.Index(2, 1))
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})
}
