package triangulate

import (
	"errors"
	"iter"

	"github.com/vbraun/torsion-cup-product/simplex"
)

// EdgeOrientations enumerates, lazily, every terminal state reachable from
// f by orienting the remaining ambiguous edges one at a time. Terminal
// states are yielded with a nil error; a failure other than a vertex-order
// conflict is yielded once as (nil, err) and ends the enumeration.
//
// The consumer may stop at any time by breaking out of the range loop;
// enumeration is depth-first, so suspended state is exactly the call
// stack. Branch order tries each edge's two orientations in a fixed order;
// callers must not rely on the enumeration order beyond determinism per
// run.
func (f *Finder) EdgeOrientations() iter.Seq2[*Finder, error] {
	return func(yield func(*Finder, error) bool) {
		f.enumerate(yield)
	}
}

// enumerate reports false once the consumer has stopped the iteration.
func (f *Finder) enumerate(yield func(*Finder, error) bool) bool {
	ambiguous := f.AmbiguousEdges()
	if len(ambiguous) == 0 {
		return yield(f, nil) // terminal state
	}
	e := ambiguous[0]
	for _, dir := range [2]Edge{e, e.Reversed()} {
		// Cheap pre-filter: the orientation graph alone must stay acyclic
		// before we pay for the orbit insertion.
		probe := f.unit.clone()
		probe.addEdge(dir.From, dir.To)
		if !probe.acyclic() {
			continue
		}
		// Authoritative check: the group action may turn this orientation
		// into a vertex-order conflict elsewhere in the complex.
		next, err := f.WithEdgeAdded(dir.From, dir.To)
		if err != nil {
			if errors.Is(err, simplex.ErrVertexOrder) {
				continue // designed pruning signal
			}
			yield(nil, err)
			return false
		}
		if !next.enumerate(yield) {
			return false
		}
	}
	// Neither orientation survived: dead end, contributes nothing.
	return true
}

// ObviousEdges returns the ambiguous edges whose orientation is forced:
// exactly one direction keeps the vertex order consistent and the full
// orientation graph acyclic. Each such edge is returned in its forced
// direction and can be committed without branching.
func (f *Finder) ObviousEdges() ([]Edge, error) {
	var out []Edge
	for _, e := range f.AmbiguousEdges() {
		forward, err := f.orientationFits(e.From, e.To)
		if err != nil {
			return nil, err
		}
		backward, err := f.orientationFits(e.To, e.From)
		if err != nil {
			return nil, err
		}
		switch {
		case forward && !backward:
			out = append(out, e)
		case backward && !forward:
			out = append(out, e.Reversed())
		}
	}
	return out, nil
}

// orientationFits trial-inserts the directed edge's orbit on a throwaway
// clone and reports whether the result keeps vertex order and leaves the
// full orientation graph acyclic.
func (f *Finder) orientationFits(from, to simplex.Vertex) (bool, error) {
	act := f.act.Clone()
	if err := act.AddOrbit(from, to); err != nil {
		if errors.Is(err, simplex.ErrVertexOrder) {
			return false, nil
		}
		return false, err
	}
	return fullGraph(act.Builder()).acyclic(), nil
}

// WithObviousEdgesAdded commits every currently obvious edge and returns
// the resulting state. Obvious edges are derived from f's state; they are
// applied cumulatively to one clone.
func (f *Finder) WithObviousEdgesAdded() (*Finder, error) {
	edges, err := f.ObviousEdges()
	if err != nil {
		return nil, err
	}
	act := f.act.Clone()
	for _, e := range edges {
		if err := act.AddOrbit(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return NewFinder(act), nil
}
