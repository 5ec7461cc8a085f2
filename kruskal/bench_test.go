package kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-fundamentals/kruskal"
	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

// BenchmarkMST_QuickUnion measures Kruskal on 500 vertices and 2000 edges.
func BenchmarkMST_QuickUnion(b *testing.B) {
	edges := buildMediumGraph(500, 2000) // pre-build once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = kruskal.MST(500, edges, kruskal.WithVariant(unionfind.VariantQuickUnion))
	}
}

// BenchmarkMST_QuickFind is the QuickFind counterpart of BenchmarkMST_QuickUnion.
func BenchmarkMST_QuickFind(b *testing.B) {
	edges := buildMediumGraph(500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = kruskal.MST(500, edges, kruskal.WithVariant(unionfind.VariantQuickFind))
	}
}
