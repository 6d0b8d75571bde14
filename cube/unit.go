package cube

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/vbraun/torsion-cup-product/simplex"
)

// Unit is the Kuhn triangulation of the unit hypercube {0,1}^d: one
// simplex per permutation of the axes, each a monotone chain of d+1
// vertices from the origin to (1,…,1).
type Unit struct {
	dim   int
	perms [][]int
}

// NewUnit returns the reference triangulation of {0,1}^dim, dim ≥ 1.
func NewUnit(dim int) *Unit {
	return &Unit{dim: dim, perms: combin.Permutations(dim, dim)}
}

// Dimension returns d.
func (u *Unit) Dimension() int { return u.dim }

// Len returns the number of simplices, d!.
func (u *Unit) Len() int { return len(u.perms) }

// Points returns the 2^d cube corners in lexicographic order.
func (u *Unit) Points() []simplex.Vertex {
	lens := make([]int, u.dim)
	for i := range lens {
		lens[i] = 2
	}
	points := make([]simplex.Vertex, 0, 1<<u.dim)
	for _, p := range combin.Cartesian(lens) {
		points = append(points, simplex.NewVertex(p...))
	}
	sort.Slice(points, func(i, j int) bool {
		return simplex.Compare(points[i], points[j]) < 0
	})
	return points
}

// Simplices returns the d! reference simplices. For permutation p, vertex i
// of the simplex has coordinate 0 exactly on the axes p[i:], so the chain
// ascends from the origin to the all-ones corner one axis at a time.
func (u *Unit) Simplices() []simplex.Simplex {
	out := make([]simplex.Simplex, 0, len(u.perms))
	for _, p := range u.perms {
		s := make(simplex.Simplex, 0, u.dim+1)
		for i := 0; i <= u.dim; i++ {
			v := make(simplex.Vertex, u.dim)
			for j := range v {
				v[j] = 1
			}
			for _, axis := range p[i:] {
				v[axis] = 0
			}
			s = append(s, v)
		}
		out = append(out, s)
	}
	return out
}
