package builder

import "github.com/vbraun/torsion-cup-product/simplex"

// Clone returns a fully independent deep copy of the builder: registry,
// simplex table, and boundary map. The backtracking search clones one
// builder per branch so that sibling branches never share mutable state.
//
// Complexity: O(N · k) over all N interned simplices of rank ≤ k.
func (b *Builder) Clone() *Builder {
	c := &Builder{
		dim:       b.dim,
		side:      make([]int, len(b.side)),
		reg:       b.reg.Clone(),
		points:    make(map[string]struct{}, len(b.points)),
		simplices: make(map[int]map[string]simplex.Simplex, len(b.simplices)),
		boundary:  make(map[string][]simplex.Simplex, len(b.boundary)),
	}
	copy(c.side, b.side)
	for key := range b.points {
		c.points[key] = struct{}{}
	}
	for rank, byKey := range b.simplices {
		clone := make(map[string]simplex.Simplex, len(byKey))
		for key, s := range byKey {
			clone[key] = s.Clone()
		}
		c.simplices[rank] = clone
	}
	for key, faces := range b.boundary {
		cloned := make([]simplex.Simplex, len(faces))
		for i, face := range faces {
			cloned[i] = face.Clone()
		}
		c.boundary[key] = cloned
	}
	return c
}
