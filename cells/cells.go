package cells

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vbraun/torsion-cup-product/homology"
)

// Sentinel errors for collection validation.
var (
	// ErrBoundary indicates a discrete ∂∘∂ = 0 violation.
	ErrBoundary = errors.New("cells: boundary of boundary does not vanish")
	// ErrMissing indicates a referenced cell has no boundary entry.
	ErrMissing = errors.New("cells: cell has no boundary entry")
)

// Cell is any complex cell with a stable identity key. Two cells are the
// same cell exactly when their keys are equal.
type Cell interface {
	Key() string
}

// Collection is a dimension-indexed snapshot of a complex: for every rank
// (number of vertices, with rank 0 the empty augmentation cell) the cells
// of that rank, plus the ordered boundary tuple of each cell.
//
// A Collection never mutates the structure it was derived from.
type Collection struct {
	dim      int
	ranks    map[int][]Cell
	boundary map[string][]Cell
}

// New assembles a collection of ambient dimension dim. The cell lists are
// re-sorted by key so iteration order is deterministic regardless of the
// caller's map ordering.
func New(dim int, ranks map[int][]Cell, boundary map[string][]Cell) *Collection {
	sorted := make(map[int][]Cell, len(ranks))
	for rank, list := range ranks {
		cp := make([]Cell, len(list))
		copy(cp, list)
		sort.Slice(cp, func(i, j int) bool { return cp[i].Key() < cp[j].Key() })
		sorted[rank] = cp
	}
	return &Collection{dim: dim, ranks: sorted, boundary: boundary}
}

// Dimension returns the ambient dimension: top cells have Dimension()+1
// vertices.
func (c *Collection) Dimension() int { return c.dim }

// Rank returns the cells with the given number of vertices, sorted by key.
func (c *Collection) Rank(rank int) []Cell {
	list := c.ranks[rank]
	out := make([]Cell, len(list))
	copy(out, list)
	return out
}

// Boundary returns the ordered face tuple of the given cell, or nil when
// absent.
func (c *Collection) Boundary(cell Cell) []Cell {
	faces, ok := c.boundary[cell.Key()]
	if !ok {
		return nil
	}
	out := make([]Cell, len(faces))
	copy(out, faces)
	return out
}

// Validate checks the discrete ∂∘∂ = 0 identity on every cell: for every
// pair of face indices i < j, the (j-1)-th face of face i must equal the
// i-th face of face j. Faces are compared by key, so the check is valid for
// quotient collections as well.
func (c *Collection) Validate() error {
	for rank := 2; rank <= c.dim+1; rank++ {
		for _, cell := range c.ranks[rank] {
			faces, ok := c.boundary[cell.Key()]
			if !ok {
				return fmt.Errorf("%w: cell (%s)", ErrMissing, cell.Key())
			}
			for j := 0; j < len(faces); j++ {
				for i := 0; i < j; i++ {
					fi, ok := c.boundary[faces[i].Key()]
					if !ok {
						return fmt.Errorf("%w: face (%s) of (%s)", ErrMissing, faces[i].Key(), cell.Key())
					}
					fj, ok := c.boundary[faces[j].Key()]
					if !ok {
						return fmt.Errorf("%w: face (%s) of (%s)", ErrMissing, faces[j].Key(), cell.Key())
					}
					if fi[j-1].Key() != fj[i].Key() {
						return fmt.Errorf("%w: cell (%s), i=%d, j=%d: (%s) != (%s)",
							ErrBoundary, cell.Key(), i, j, fi[j-1].Key(), fj[i].Key())
					}
				}
			}
		}
	}
	return nil
}

// ChainComplex exports the signed boundary operators for homology: in
// dimension k the matrix of ∂_k has one column per k-cell, one row per
// (k-1)-cell, and the i-th face of a cell contributes (-1)^i to its row.
// The rank-0 augmentation cell is dropped; the complex is unreduced.
func (c *Collection) ChainComplex() (*homology.ChainComplex, error) {
	counts := make([]int, c.dim+1)
	index := make([]map[string]int, c.dim+1)
	for k := 0; k <= c.dim; k++ {
		list := c.ranks[k+1]
		counts[k] = len(list)
		index[k] = make(map[string]int, len(list))
		for pos, cell := range list {
			index[k][cell.Key()] = pos
		}
	}
	boundaries := make([]*homology.Matrix, 0, c.dim)
	for k := 1; k <= c.dim; k++ {
		m := homology.NewMatrix(counts[k-1], counts[k])
		for col, cell := range c.ranks[k+1] {
			faces, ok := c.boundary[cell.Key()]
			if !ok {
				return nil, fmt.Errorf("%w: cell (%s)", ErrMissing, cell.Key())
			}
			for i, face := range faces {
				row, ok := index[k-1][face.Key()]
				if !ok {
					return nil, fmt.Errorf("%w: face (%s) of (%s)", ErrMissing, face.Key(), cell.Key())
				}
				sign := int64(1)
				if i%2 == 1 {
					sign = -1
				}
				m.Set(row, col, m.At(row, col)+sign)
			}
		}
		boundaries = append(boundaries, m)
	}
	return homology.NewChainComplex(counts, boundaries)
}
