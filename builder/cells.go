package builder

import (
	"github.com/vbraun/torsion-cup-product/cells"
)

// Cells returns the complex as a read-only cells.Collection snapshot. The
// snapshot shares no mutable state with the builder: later insertions do
// not show up in it.
func (b *Builder) Cells() *cells.Collection {
	ranks := make(map[int][]cells.Cell, len(b.simplices))
	for rank := range b.simplices {
		list := b.Simplices(rank)
		cast := make([]cells.Cell, len(list))
		for i, s := range list {
			cast[i] = s
		}
		ranks[rank] = cast
	}
	boundary := make(map[string][]cells.Cell, len(b.boundary))
	for key, faces := range b.boundary {
		cast := make([]cells.Cell, len(faces))
		for i, face := range faces {
			cast[i] = face.Clone()
		}
		boundary[key] = cast
	}
	return cells.New(b.dim, ranks, boundary)
}
