package cube

import "github.com/vbraun/torsion-cup-product/simplex"

// Filter admits vertices whose coordinate on each axis lies in that axis's
// admissible set.
type Filter struct {
	sets [][]int
}

// NewFilter builds a filter from one admissible set per axis.
func NewFilter(sets ...[]int) *Filter {
	cp := make([][]int, len(sets))
	for i, set := range sets {
		cp[i] = make([]int, len(set))
		copy(cp[i], set)
	}
	return &Filter{sets: cp}
}

// UnitFilter admits exactly the corners of the unit cube {0,1}^dim.
func UnitFilter(dim int) *Filter {
	sets := make([][]int, dim)
	for i := range sets {
		sets[i] = []int{0, 1}
	}
	return &Filter{sets: sets}
}

// Contains reports whether every coordinate of v is admissible.
func (f *Filter) Contains(v simplex.Vertex) bool {
	if len(v) != len(f.sets) {
		return false
	}
	for axis, x := range v {
		ok := false
		for _, allowed := range f.sets[axis] {
			if x == allowed {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// Apply returns the admissible vertices of the list, preserving order.
func (f *Filter) Apply(vertices []simplex.Vertex) []simplex.Vertex {
	var out []simplex.Vertex
	for _, v := range vertices {
		if f.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}
