// Package kruskal computes a Minimum Spanning Tree (or forest check) over an
// indexed, undirected, weighted edge list using Kruskal's algorithm on top of
// a unionfind.UF.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects every vertex with minimal total weight.
//
//   - Why Kruskal here?
//     It is the textbook client of a disjoint-set structure: sort the edges
//     by weight, then keep an edge only when its endpoints are not yet
//     Connected, and Union them.
//
// Vertices are the integers 0..n−1, matching unionfind ids.
//
// Complexity
//
//   - Time: O(E log E) for sorting plus E Connected/Union calls, whose cost
//     depends on the chosen unionfind.Variant (no path compression).
//   - Space: O(V + E).
//
// Determinism
//
//	Edges are sorted with a stable sort, so equal weights keep input order.
//
// Error Conditions
//
//   - ErrDisconnected: n == 0, or the edges do not span all n vertices.
//   - ErrVertexOutOfRange: an edge endpoint outside [0, n).
//   - unionfind.ErrUnknownVariant: unsupported WithVariant value.
package kruskal
