package kruskal

import (
	"errors"

	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

// ErrDisconnected indicates that the edges cannot span every vertex.
var ErrDisconnected = errors.New("kruskal: graph is disconnected")

// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
var ErrVertexOutOfRange = errors.New("kruskal: vertex out of range")

// Edge is an undirected weighted connection between vertices U and V.
type Edge struct {
	U, V   int
	Weight int64
}

// Options configures MST.
//
// Fields:
//
//	Variant unionfind.Variant — disjoint-set implementation. Defaults to quick-union.
type Options struct {
	Variant unionfind.Variant
}

// Option configures Options.
type Option func(*Options)

// WithVariant returns an Option that selects the disjoint-set implementation.
func WithVariant(v unionfind.Variant) Option {
	return func(opts *Options) {
		opts.Variant = v
	}
}

// DefaultOptions returns Options with Variant = unionfind.VariantQuickUnion.
func DefaultOptions() Options {
	return Options{Variant: unionfind.VariantQuickUnion}
}
