// Package unionfind defines the UF interface, variant options and sentinel errors.
package unionfind

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrIndexOutOfRange indicates that an element id lies outside [0, n).
var ErrIndexOutOfRange = errors.New("unionfind: index out of range")

// ErrUnknownVariant indicates that the requested variant name is not supported.
var ErrUnknownVariant = errors.New("unionfind: unknown variant")

// UF is the capability shared by every disjoint-set variant.
// Implementations are constructed with a fixed element count n; valid ids are 0..n-1.
type UF interface {
	// Union merges the sets containing p and q.
	Union(p, q int) error

	// Connected reports whether p and q belong to the same set.
	Connected(p, q int) (bool, error)

	// Find returns the representative of p's set: its root for QuickUnion,
	// its set id for QuickFind.
	Find(p int) (int, error)

	// Len returns the number of elements n.
	Len() int

	// Count returns the current number of disjoint sets.
	Count() int

	// String renders the internal array as space-separated integers.
	String() string
}

// Variant names a UF implementation.
type Variant string

const (
	// VariantQuickUnion selects QuickUnion (parent links, root walks).
	VariantQuickUnion Variant = "quick-union"

	// VariantQuickFind selects QuickFind (direct ids, relabel on union).
	VariantQuickFind Variant = "quick-find"
)

// Options configures New.
//
// Fields:
//
//	Variant Variant — which implementation to build. Defaults to VariantQuickUnion.
type Options struct {
	Variant Variant
}

// Option mutates Options.
type Option func(*Options)

// WithVariant returns an Option selecting the implementation.
func WithVariant(v Variant) Option {
	return func(opts *Options) {
		opts.Variant = v
	}
}

// DefaultOptions returns Options with Variant = VariantQuickUnion.
func DefaultOptions() Options {
	return Options{Variant: VariantQuickUnion}
}

// New builds a UF of n singleton sets using the variant chosen by opts.
// An empty Variant falls back to the default.
//
// Returns ErrUnknownVariant for any other variant name.
func New(n int, opts ...Option) (UF, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Variant {
	case VariantQuickUnion, "":
		return NewQuickUnion(n), nil
	case VariantQuickFind:
		return NewQuickFind(n), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, o.Variant)
	}
}

// ParseVariant converts a user-supplied name into a Variant.
// Matching is case-insensitive; "qu"/"qf" and underscores are accepted.
func ParseVariant(s string) (Variant, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "quick-union", "quickunion", "qu":
		return VariantQuickUnion, nil
	case "quick-find", "quickfind", "qf":
		return VariantQuickFind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// checkIndex validates an element id against a universe of n elements.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: id %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}

	return nil
}

// singletons returns the identity array 0..n-1; a negative n yields an empty slice.
func singletons(n int) []int {
	if n < 0 {
		n = 0
	}
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}

	return a
}

// render joins the values with single spaces.
func render(a []int) string {
	var sb strings.Builder
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
