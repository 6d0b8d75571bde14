package builder

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/vbraun/torsion-cup-product/simplex"
)

// Sentinel errors for box complex construction.
var (
	// ErrSideLength indicates a non-positive box side length.
	ErrSideLength = errors.New("builder: side lengths must be positive")
	// ErrOutOfBox indicates a vertex outside the declared coordinate box.
	ErrOutOfBox = errors.New("builder: vertex outside the coordinate box")
	// ErrDimension indicates a vertex with the wrong coordinate count.
	ErrDimension = errors.New("builder: vertex has wrong dimension")
)

// Builder incrementally assembles a simplicial complex inside the box
// [0,s_0]×…×[0,s_{d-1}]. The simplex table is keyed by rank (number of
// vertices) and, together with the boundary map, is populated strictly by
// insertion: entries are never mutated after a simplex has been added.
//
// Builder is not safe for concurrent use.
type Builder struct {
	dim       int
	side      []int
	reg       *simplex.Registry
	points    map[string]struct{}           // admissible lattice vertices
	simplices map[int]map[string]simplex.Simplex // rank -> key -> simplex
	boundary  map[string][]simplex.Simplex  // simplex key -> ordered faces
}

// New declares a box with the given side lengths, one positive integer per
// axis, and enumerates its lattice points.
func New(sideLength ...int) (*Builder, error) {
	if len(sideLength) == 0 {
		return nil, fmt.Errorf("%w: no side lengths given", ErrSideLength)
	}
	side := make([]int, len(sideLength))
	lens := make([]int, len(sideLength))
	for i, s := range sideLength {
		if s <= 0 {
			return nil, fmt.Errorf("%w: axis %d has length %d", ErrSideLength, i, s)
		}
		side[i] = s
		lens[i] = s + 1 // coordinates 0..s inclusive
	}
	b := &Builder{
		dim:       len(side),
		side:      side,
		reg:       simplex.NewRegistry(),
		points:    make(map[string]struct{}),
		simplices: make(map[int]map[string]simplex.Simplex),
		boundary:  make(map[string][]simplex.Simplex),
	}
	for _, p := range combin.Cartesian(lens) {
		b.points[simplex.NewVertex(p...).Key()] = struct{}{}
	}
	return b, nil
}

// Dimension returns the number of box axes.
func (b *Builder) Dimension() int { return b.dim }

// SideLength returns a copy of the per-axis side lengths.
func (b *Builder) SideLength() []int {
	side := make([]int, len(b.side))
	copy(side, b.side)
	return side
}

// InBox reports whether v is an admissible lattice point of the box.
func (b *Builder) InBox(v simplex.Vertex) bool {
	if len(v) != b.dim {
		return false
	}
	_, ok := b.points[v.Key()]
	return ok
}

// MakeSimplex interns the given vertex order without inserting anything
// into the complex. It is the contact point for canonicalization and gluing
// code that must respect the order invariant but not grow the complex.
func (b *Builder) MakeSimplex(vertices ...simplex.Vertex) (simplex.Simplex, error) {
	return b.reg.Intern(simplex.New(vertices...))
}

// AddSimplex inserts the simplex given by the ordered vertices, then
// recursively inserts each of its remove-one faces, recording the ordered
// boundary tuple. The canonical (interned) simplex is returned.
//
// Every vertex must lie in the declared box. A conflicting vertex order for
// any simplex or face aborts the insertion with simplex.ErrVertexOrder.
func (b *Builder) AddSimplex(vertices ...simplex.Vertex) (simplex.Simplex, error) {
	for _, v := range vertices {
		if len(v) != b.dim {
			return nil, fmt.Errorf("%w: vertex (%s) in %d-box", ErrDimension, v.Key(), b.dim)
		}
		if !b.InBox(v) {
			return nil, fmt.Errorf("%w: vertex (%s)", ErrOutOfBox, v.Key())
		}
	}
	return b.addSimplex(simplex.New(vertices...))
}

// addSimplex performs the recursive insertion. Vertices are already known
// to lie in the box: faces only ever drop vertices.
func (b *Builder) addSimplex(s simplex.Simplex) (simplex.Simplex, error) {
	interned, err := b.reg.Intern(s)
	if err != nil {
		return nil, err
	}
	rank := interned.Rank()
	byKey := b.simplices[rank]
	if byKey == nil {
		byKey = make(map[string]simplex.Simplex)
		b.simplices[rank] = byKey
	}
	key := interned.Key()
	if _, present := byKey[key]; present {
		return interned, nil // idempotent re-insertion
	}
	faces := make([]simplex.Simplex, 0, rank)
	for _, face := range interned.Faces() {
		added, err := b.addSimplex(face)
		if err != nil {
			return nil, err
		}
		faces = append(faces, added)
	}
	byKey[key] = interned
	b.boundary[key] = faces
	return interned, nil
}

// Has reports whether the simplex (by its ordered key) has been inserted.
func (b *Builder) Has(s simplex.Simplex) bool {
	byKey, ok := b.simplices[s.Rank()]
	if !ok {
		return false
	}
	_, ok = byKey[s.Key()]
	return ok
}

// Simplices returns the inserted simplices of the given rank, sorted by key
// for deterministic iteration.
func (b *Builder) Simplices(rank int) []simplex.Simplex {
	byKey := b.simplices[rank]
	out := make([]simplex.Simplex, 0, len(byKey))
	for _, s := range byKey {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// SimplexCount returns the number of inserted simplices of the given rank.
func (b *Builder) SimplexCount(rank int) int { return len(b.simplices[rank]) }

// Boundary returns the ordered face tuple recorded for s, or nil if s has
// not been inserted.
func (b *Builder) Boundary(s simplex.Simplex) []simplex.Simplex {
	faces, ok := b.boundary[s.Key()]
	if !ok {
		return nil
	}
	out := make([]simplex.Simplex, len(faces))
	copy(out, faces)
	return out
}

// FacetsAtBoundary returns all codimension-1 facets (rank d simplices)
// whose vertices all lie on the axis-th coordinate's minimum face of the
// box (inner=true) or its maximum face (inner=false).
func (b *Builder) FacetsAtBoundary(axis int, inner bool) []simplex.Simplex {
	value := 0
	if !inner {
		value = b.side[axis]
	}
	var out []simplex.Simplex
	for _, facet := range b.Simplices(b.dim) {
		onFace := true
		for _, v := range facet {
			if v[axis] != value {
				onFace = false
				break
			}
		}
		if onFace {
			out = append(out, facet)
		}
	}
	return out
}

// LatticeEdges returns every axis-parallel unit edge (base, base+e_axis)
// with base ranging over [0,s_i) per axis. Edges on the maximal faces are
// omitted: under torus gluing they are translates of the ones listed.
func (b *Builder) LatticeEdges() [][2]simplex.Vertex {
	var out [][2]simplex.Vertex
	for _, p := range combin.Cartesian(b.side) {
		base := simplex.NewVertex(p...)
		for axis := 0; axis < b.dim; axis++ {
			tip := base.Clone()
			tip[axis]++
			out = append(out, [2]simplex.Vertex{base, tip})
		}
	}
	return out
}
