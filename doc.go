// Package fundamentals is a small playground of textbook data structures
// written in plain Go — from disjoint sets to persistent lists.
//
// What is inside?
//
//	unionfind/ — the UF capability interface with QuickUnion and QuickFind
//	list/      — persistent singly linked List[T] and arena-backed DoubleList[T]
//	gridgraph/ — island labeling on 2D grids through any UF variant
//	kruskal/   — Minimum Spanning Tree over indexed edges using a UF
//	scenario/  — text and TOML union-find workloads plus a replay driver
//	cmd/ufclient — command-line client replaying a workload
//
// Quick example:
//
//	uf := unionfind.NewQuickUnion(5)
//	_ = uf.Union(1, 2)
//	ok, _ := uf.Connected(1, 2) // true
//	fmt.Println(uf)             // 0 2 2 3 4
//
// Neither structure balances its trees or compresses paths: QuickUnion keeps
// the plain "attach p's root under q's root" rule on purpose, so its cost
// grows with tree height.
//
//	go get github.com/katalvlaran/lvlath-fundamentals
package fundamentals
