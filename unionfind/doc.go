// Package unionfind provides the disjoint-set (union-find) capability
// interface UF together with two classic textbook variants: QuickUnion and
// QuickFind.
//
// What & Why
//
//   - What is a disjoint set?
//     A partition of a fixed universe of elements {0, 1, …, n−1} into
//     non-overlapping equivalence classes. Two operations matter: merge the
//     classes of two elements (Union), and ask whether two elements share a
//     class (Connected).
//
//   - Why two variants?
//     They sit at opposite ends of the same trade-off and share one
//     interface, so callers can swap them freely:
//
//   - QuickUnion: each element stores a parent index. Union is a single
//     pointer assignment after two root walks; Connected walks both roots.
//
//   - QuickFind: each element stores its class id. Connected is one
//     comparison; Union rewrites every element of the old class.
//
// Complexity
//
//	            construct   Union        Connected
//	QuickUnion  O(n)        O(h)         O(h)        (h = tree height, up to n)
//	QuickFind   O(n)        O(n)         O(1)
//
// QuickUnion always attaches p's root under q's root. There is no path
// compression and no union-by-rank or union-by-size, so an adversarial
// union order (e.g. Union(0,1), Union(1,2), …) builds a chain of height n
// and degrades root resolution to linear time. The representation is
// therefore not commutative (Union(p,q) and Union(q,p) produce different
// parent arrays) although the resulting connectivity is identical.
//
// Error Conditions
//
//   - ErrIndexOutOfRange
//     Any element id p or q with p < 0 or p >= Len(). The structure is left
//     untouched.
//
//   - ErrUnknownVariant (New, ParseVariant only)
//     The requested Variant is neither VariantQuickUnion nor VariantQuickFind.
//
// Debug rendering
//
//	String() lists the parent (QuickUnion) or id (QuickFind) array in index
//	order, separated by single spaces: "0 2 2 3 4". It is meant for
//	diagnostics only and is not parsed back.
//
// Concurrency
//
//	Neither variant is safe for concurrent use. Wrap a UF in a sync.Mutex
//	when it must be shared between goroutines.
package unionfind
