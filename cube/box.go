package cube

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/vbraun/torsion-cup-product/builder"
	"github.com/vbraun/torsion-cup-product/simplex"
)

// TriangulateBox fills b's box with the Kuhn triangulation of every unit
// lattice cell, corners ordered lexicographically. Every simplex is then a
// lexicographically sorted vertex chain, so faces shared between
// neighboring cells are interned with identical orders and the global
// vertex-order invariant holds by construction.
func TriangulateBox(b *builder.Builder) error {
	dim := b.Dimension()
	offsets := make([]int, dim)
	for i := range offsets {
		offsets[i] = 2
	}
	for _, base := range combin.Cartesian(b.SideLength()) {
		corners := make([]simplex.Vertex, 0, 1<<dim)
		for _, off := range combin.Cartesian(offsets) {
			v := make(simplex.Vertex, dim)
			for axis := range v {
				v[axis] = base[axis] + off[axis]
			}
			corners = append(corners, v)
		}
		sort.Slice(corners, func(i, j int) bool {
			return simplex.Compare(corners[i], corners[j]) < 0
		})
		tri, err := New(corners...)
		if err != nil {
			return err
		}
		for _, s := range tri.Simplices() {
			if _, err := b.AddSimplex(s...); err != nil {
				return err
			}
		}
	}
	return nil
}
