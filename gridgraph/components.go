package gridgraph

import (
	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

// Labels builds a UF of size W·H in which every pair of neighboring land
// cells (per gg.Conn) has been merged. Water cells stay singletons.
//
// Time:   O(W·H·d) union calls, each costing whatever gg.Variant costs.
// Memory: O(W·H).
func (gg *GridGraph) Labels() (unionfind.UF, error) {
	uf, err := unionfind.New(gg.Width*gg.Height, unionfind.WithVariant(gg.Variant))
	if err != nil {
		return nil, err
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // water
			}
			u := gg.Index(x, y)
			for _, d := range gg.neighborOffsets {
				vx, vy := x+d[0], y+d[1]
				if !gg.InBounds(vx, vy) || !gg.IsLand(vx, vy) {
					continue
				}
				if err := uf.Union(u, gg.Index(vx, vy)); err != nil {
					return nil, err
				}
			}
		}
	}

	return uf, nil
}

// ConnectedComponents finds all contiguous regions ("islands") of land cells.
// Each component is a slice of row-major cell indices in ascending order;
// components are ordered by their smallest index.
//
// To convert an index back to (x,y), use Coordinate(idx).
func (gg *GridGraph) ConnectedComponents() ([][]int, error) {
	uf, err := gg.Labels()
	if err != nil {
		return nil, err
	}

	// slot maps a set representative to the position of its component in comps.
	slot := make(map[int]int)
	var comps [][]int
	for idx := 0; idx < gg.Width*gg.Height; idx++ {
		x, y := gg.Coordinate(idx)
		if !gg.IsLand(x, y) {
			continue
		}
		r, err := uf.Find(idx)
		if err != nil {
			return nil, err
		}
		k, ok := slot[r]
		if !ok {
			k = len(comps)
			slot[r] = k
			comps = append(comps, nil)
		}
		comps[k] = append(comps[k], idx)
	}

	return comps, nil
}

// Connected reports whether land cells (x1,y1) and (x2,y2) lie on the same island.
// Water cells are connected only to themselves.
//
// The first call labels the whole grid, as Labels does, and keeps the result;
// later calls reuse it and only cost two Find walks.
func (gg *GridGraph) Connected(x1, y1, x2, y2 int) (bool, error) {
	if err := gg.checkCell(x1, y1); err != nil {
		return false, err
	}
	if err := gg.checkCell(x2, y2); err != nil {
		return false, err
	}
	if gg.labels == nil {
		uf, err := gg.Labels()
		if err != nil {
			return false, err
		}
		gg.labels = uf
	}

	return gg.labels.Connected(gg.Index(x1, y1), gg.Index(x2, y2))
}
