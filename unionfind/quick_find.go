package unionfind

// QuickFind stores the set id of every element directly.
// Two elements are connected iff their ids are equal.
type QuickFind struct {
	id    []int
	count int
}

var _ UF = (*QuickFind)(nil)

// NewQuickFind returns n singleton sets with id[i] = i.
// A negative n yields an empty structure.
// Complexity: O(n).
func NewQuickFind(n int) *QuickFind {
	id := singletons(n)

	return &QuickFind{id: id, count: len(id)}
}

// Find returns the set id of p.
// Complexity: O(1).
func (qf *QuickFind) Find(p int) (int, error) {
	if err := checkIndex(p, len(qf.id)); err != nil {
		return 0, err
	}

	return qf.id[p], nil
}

// Union relabels every element whose id equals id[p] to id[q].
//
// Returns ErrIndexOutOfRange without mutating anything if p or q is invalid.
// Complexity: O(n) per call.
func (qf *QuickFind) Union(p, q int) error {
	n := len(qf.id)
	if err := checkIndex(p, n); err != nil {
		return err
	}
	if err := checkIndex(q, n); err != nil {
		return err
	}

	pid, qid := qf.id[p], qf.id[q]
	if pid == qid {
		return nil
	}
	for i := range qf.id {
		if qf.id[i] == pid {
			qf.id[i] = qid
		}
	}
	qf.count--

	return nil
}

// Connected reports whether p and q carry the same id.
// Complexity: O(1).
func (qf *QuickFind) Connected(p, q int) (bool, error) {
	n := len(qf.id)
	if err := checkIndex(p, n); err != nil {
		return false, err
	}
	if err := checkIndex(q, n); err != nil {
		return false, err
	}

	return qf.id[p] == qf.id[q], nil
}

// Len returns the number of elements.
func (qf *QuickFind) Len() int { return len(qf.id) }

// Count returns the number of disjoint sets.
func (qf *QuickFind) Count() int { return qf.count }

// IDs returns a copy of the id array.
func (qf *QuickFind) IDs() []int {
	out := make([]int, len(qf.id))
	copy(out, qf.id)

	return out
}

// String renders the id array in index order.
func (qf *QuickFind) String() string {
	return render(qf.id)
}
