package unionfind

// QuickUnion stores a parent link per element: parent[i] is i's parent,
// and parent[r] == r marks a root. The root of i is parent[parent[…parent[i]…]].
//
// No path compression or balancing is applied; see the package doc.
type QuickUnion struct {
	parent []int
	count  int
}

var _ UF = (*QuickUnion)(nil)

// NewQuickUnion returns n singleton sets, each element its own root.
// A negative n yields an empty structure.
// Complexity: O(n).
func NewQuickUnion(n int) *QuickUnion {
	parent := singletons(n)

	return &QuickUnion{parent: parent, count: len(parent)}
}

// root follows parent links from i until it reaches a fixed point.
// Caller guarantees i is in range.
func (qu *QuickUnion) root(i int) int {
	for i != qu.parent[i] {
		i = qu.parent[i]
	}

	return i
}

// Find returns the root of p's tree.
// Complexity: O(h), h = height of that tree.
func (qu *QuickUnion) Find(p int) (int, error) {
	if err := checkIndex(p, len(qu.parent)); err != nil {
		return 0, err
	}

	return qu.root(p), nil
}

// Union attaches p's root under q's root: parent[root(p)] = root(q).
// The write happens even when both roots coincide, which leaves the
// root's self-loop unchanged.
//
// Returns ErrIndexOutOfRange without mutating anything if p or q is invalid.
// Complexity: O(h_p + h_q).
func (qu *QuickUnion) Union(p, q int) error {
	n := len(qu.parent)
	if err := checkIndex(p, n); err != nil {
		return err
	}
	if err := checkIndex(q, n); err != nil {
		return err
	}

	i := qu.root(p)
	j := qu.root(q)
	if i != j {
		qu.count--
	}
	qu.parent[i] = j

	return nil
}

// Connected reports whether p and q share a root.
// Complexity: O(h_p + h_q).
func (qu *QuickUnion) Connected(p, q int) (bool, error) {
	n := len(qu.parent)
	if err := checkIndex(p, n); err != nil {
		return false, err
	}
	if err := checkIndex(q, n); err != nil {
		return false, err
	}

	return qu.root(p) == qu.root(q), nil
}

// Len returns the number of elements.
func (qu *QuickUnion) Len() int { return len(qu.parent) }

// Count returns the number of disjoint sets.
func (qu *QuickUnion) Count() int { return qu.count }

// Parents returns a copy of the parent array.
func (qu *QuickUnion) Parents() []int {
	out := make([]int, len(qu.parent))
	copy(out, qu.parent)

	return out
}

// String renders the parent array in index order, e.g. "0 2 2 3".
func (qu *QuickUnion) String() string {
	return render(qu.parent)
}
