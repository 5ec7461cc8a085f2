// Package gridgraph treats a 2D grid of cells as a graph and labels its
// connected "islands" with a disjoint-set structure from package unionfind.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are "land", the rest are "water".
//   - Every pair of neighboring land cells is merged with UF.Union; islands
//     are the resulting disjoint sets.
//
// Why:
//
//   - Game maps: contiguous land detection.
//   - Image processing: blob labeling on a thresholded raster.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity (n = W×H, d = 4 or 8, h = QuickUnion tree height):
//
//   - ConnectedComponents with VariantQuickUnion: O(n·d·h), Memory: O(n).
//   - ConnectedComponents with VariantQuickFind:  O(n·d·n) worst case, Memory: O(n).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.Variant: which unionfind variant does the merging.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellOutOfRange: a coordinate outside the grid.
//   - unionfind.ErrUnknownVariant: unsupported GridOptions.Variant.
package gridgraph
