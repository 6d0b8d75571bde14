package triangulate

import (
	"sort"

	"github.com/vbraun/torsion-cup-product/cube"
	"github.com/vbraun/torsion-cup-product/orbit"
	"github.com/vbraun/torsion-cup-product/simplex"
)

// Edge is a directed vertex pair: an edge orientation.
type Edge struct {
	From, To simplex.Vertex
}

// Key returns a stable string form, e.g. "0,0->1,1".
func (e Edge) Key() string { return e.From.Key() + "->" + e.To.Key() }

// Reversed returns the opposite orientation.
func (e Edge) Reversed() Edge { return Edge{From: e.To, To: e.From} }

// Finder is one state of the triangulation search: a builder snapshot
// (wrapped in its group action) together with the directed graph of edge
// orientations already committed inside the unit cube {0,1}^d.
//
// Finder values are immutable in use: every transition returns a new
// Finder over cloned state.
type Finder struct {
	act  *orbit.Action
	unit *vertexGraph
}

// NewFinder builds the state for the given action, reading the committed
// orientations out of the builder's 1-simplices restricted to the unit
// cube.
func NewFinder(act *orbit.Action) *Finder {
	f := &Finder{act: act, unit: newVertexGraph()}
	b := act.Builder()
	filter := cube.UnitFilter(b.Dimension())
	for _, s := range b.Simplices(1) {
		if filter.Contains(s[0]) {
			f.unit.ensure(s[0])
		}
	}
	for _, e := range b.Simplices(2) {
		if filter.Contains(e[0]) && filter.Contains(e[1]) {
			f.unit.addEdge(e[0], e[1])
		}
	}
	return f
}

// Action returns the group action underlying this state.
func (f *Finder) Action() *orbit.Action { return f.act }

// UnitEdges returns the full target edge set: every vertex pair occurring
// as an edge of some simplex of the reference Kuhn triangulation of
// {0,1}^d, with the lexicographically smaller endpoint first (the reference
// cube's prescribed corner order is lexicographic). Sorted, deduplicated.
func (f *Finder) UnitEdges() []Edge {
	dim := f.act.Builder().Dimension()
	seen := make(map[string]struct{})
	var out []Edge
	for _, s := range cube.NewUnit(dim).Simplices() {
		ordered := s.Sorted()
		for i := 0; i < len(ordered); i++ {
			for j := i + 1; j < len(ordered); j++ {
				e := Edge{From: ordered[i], To: ordered[j]}
				if _, ok := seen[e.Key()]; ok {
					continue
				}
				seen[e.Key()] = struct{}{}
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// AmbiguousEdges returns the unit edges not yet oriented in either
// direction in this state's graph, in the fixed UnitEdges order.
func (f *Finder) AmbiguousEdges() []Edge {
	var out []Edge
	for _, e := range f.UnitEdges() {
		if f.unit.hasEitherDirection(e.From, e.To) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Terminal reports whether no ambiguous edges remain.
func (f *Finder) Terminal() bool { return len(f.AmbiguousEdges()) == 0 }

// UnitOrientations returns the committed orientations inside the unit
// cube, sorted. Two terminal states are the same triangulation exactly
// when these agree.
func (f *Finder) UnitOrientations() []Edge { return f.unit.orientations() }

// WithEdgeAdded commits the orientation from → to by inserting the orbit
// of the 1-simplex (from, to) into a cloned builder and returns the
// resulting state. A vertex-order conflict anywhere in the orbit surfaces
// as simplex.ErrVertexOrder.
func (f *Finder) WithEdgeAdded(from, to simplex.Vertex) (*Finder, error) {
	act := f.act.Clone()
	if err := act.AddOrbit(from, to); err != nil {
		return nil, err
	}
	return NewFinder(act), nil
}

// WithAllEdgesToOrigin commits every ambiguous edge incident to the
// coordinate origin, oriented into the origin — a cheap forced deduction
// used to seed the search before backtracking.
func (f *Finder) WithAllEdgesToOrigin() (*Finder, error) {
	origin := make(simplex.Vertex, f.act.Builder().Dimension())
	act := f.act.Clone()
	for _, e := range f.AmbiguousEdges() {
		switch {
		case e.From.Equal(origin):
			if err := act.AddOrbit(e.To, origin); err != nil {
				return nil, err
			}
		case e.To.Equal(origin):
			if err := act.AddOrbit(e.From, origin); err != nil {
				return nil, err
			}
		}
	}
	return NewFinder(act), nil
}

// Ordered returns a topological order of the full orientation graph (all
// committed edges, not just the unit cube), or ErrCyclic.
func (f *Finder) Ordered() ([]simplex.Vertex, error) {
	return fullGraph(f.act.Builder()).topoOrder()
}

// LevelSets returns the level sets of the full orientation graph under
// iterated minimal elements, or ErrCyclic.
func (f *Finder) LevelSets() ([][]simplex.Vertex, error) {
	return fullGraph(f.act.Builder()).levelSets()
}
