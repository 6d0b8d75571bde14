package cube

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/vbraun/torsion-cup-product/simplex"
)

// Sentinel errors for prescribed-order triangulations.
var (
	// ErrNoCorners indicates an empty corner list.
	ErrNoCorners = errors.New("cube: no corners given")
	// ErrCornerCount indicates a corner count different from 2^d.
	ErrCornerCount = errors.New("cube: corner count is not 2^dimension")
	// ErrDegenerate indicates a cell with zero extent along some axis.
	ErrDegenerate = errors.New("cube: degenerate cell extent")
)

// Triangulation is the Kuhn triangulation of one box cell with a
// prescribed vertex order: every simplex lists its vertices in the order
// the corners were given, which is what fixes the orientation of each edge
// when the simplices are interned.
type Triangulation struct {
	vertices  []simplex.Vertex
	sortKey   map[string]int
	dim       int
	extentMin simplex.Vertex
	extentMax simplex.Vertex
	unit      *Unit
	vertexMap map[string]simplex.Vertex // unit corner key -> cell corner
}

// New builds the triangulation of the cell spanned by the given corners,
// in the given order. The corners must be the 2^d corners of a
// non-degenerate axis-aligned box.
func New(orderedCorners ...simplex.Vertex) (*Triangulation, error) {
	if len(orderedCorners) == 0 {
		return nil, ErrNoCorners
	}
	dim := len(orderedCorners[0])
	if len(orderedCorners) != 1<<dim {
		return nil, fmt.Errorf("%w: got %d corners in dimension %d",
			ErrCornerCount, len(orderedCorners), dim)
	}
	t := &Triangulation{
		vertices:  make([]simplex.Vertex, len(orderedCorners)),
		sortKey:   make(map[string]int, len(orderedCorners)),
		dim:       dim,
		extentMin: orderedCorners[0].Clone(),
		extentMax: orderedCorners[0].Clone(),
		unit:      NewUnit(dim),
		vertexMap: make(map[string]simplex.Vertex, len(orderedCorners)),
	}
	for i, c := range orderedCorners {
		t.vertices[i] = c.Clone()
		t.sortKey[c.Key()] = i
		for axis, x := range c {
			if x < t.extentMin[axis] {
				t.extentMin[axis] = x
			}
			if x > t.extentMax[axis] {
				t.extentMax[axis] = x
			}
		}
	}
	for axis := range t.extentMin {
		if t.extentMin[axis] == t.extentMax[axis] {
			return nil, fmt.Errorf("%w: axis %d", ErrDegenerate, axis)
		}
	}
	unitPoints := t.unit.Points()
	cellPoints := t.Points()
	for i, up := range unitPoints {
		t.vertexMap[up.Key()] = cellPoints[i]
	}
	return t, nil
}

// Dimension returns the cell dimension d.
func (t *Triangulation) Dimension() int { return t.dim }

// Vertices returns the corners in their prescribed order.
func (t *Triangulation) Vertices() []simplex.Vertex {
	out := make([]simplex.Vertex, len(t.vertices))
	for i, v := range t.vertices {
		out[i] = v.Clone()
	}
	return out
}

// Points returns the cell corners in lexicographic order, matching the
// order of Unit.Points so the two line up positionally.
func (t *Triangulation) Points() []simplex.Vertex {
	extents := make([][2]int, t.dim)
	lens := make([]int, t.dim)
	for axis := range extents {
		extents[axis] = [2]int{t.extentMin[axis], t.extentMax[axis]}
		lens[axis] = 2
	}
	points := make([]simplex.Vertex, 0, 1<<t.dim)
	for _, idx := range combin.Cartesian(lens) {
		v := make(simplex.Vertex, t.dim)
		for axis, pick := range idx {
			v[axis] = extents[axis][pick]
		}
		points = append(points, v)
	}
	sort.Slice(points, func(i, j int) bool {
		return simplex.Compare(points[i], points[j]) < 0
	})
	return points
}

// Len returns the number of simplices, d!.
func (t *Triangulation) Len() int { return t.unit.Len() }

// Simplices maps each reference simplex through the corner correspondence
// and sorts its vertices by the prescribed corner order.
func (t *Triangulation) Simplices() []simplex.Simplex {
	out := make([]simplex.Simplex, 0, t.unit.Len())
	for _, us := range t.unit.Simplices() {
		s := make(simplex.Simplex, len(us))
		for i, uv := range us {
			s[i] = t.vertexMap[uv.Key()].Clone()
		}
		sort.Slice(s, func(i, j int) bool {
			return t.sortKey[s[i].Key()] < t.sortKey[s[j].Key()]
		})
		out = append(out, s)
	}
	return out
}
