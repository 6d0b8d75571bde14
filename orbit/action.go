package orbit

import (
	"errors"
	"fmt"

	"github.com/vbraun/torsion-cup-product/builder"
	"github.com/vbraun/torsion-cup-product/simplex"
)

// ErrInvalidAction indicates an orbit member that is not a known
// top-dimensional cell: the supplied group generators do not preserve the
// complex. This is a precondition violation, not a recoverable condition.
var ErrInvalidAction = errors.New("orbit: group action does not preserve the complex")

// Action couples a builder with the generators of a finite symmetry group.
// The zero generator list is valid and yields pure torus-translation
// orbits.
type Action struct {
	b    *builder.Builder
	gens []simplex.Generator
}

// New returns an action of the given generators on b's box.
func New(b *builder.Builder, gens ...simplex.Generator) *Action {
	return &Action{b: b, gens: gens}
}

// Builder returns the underlying builder.
func (a *Action) Builder() *builder.Builder { return a.b }

// Generators returns the generator list (shared, generators are immutable).
func (a *Action) Generators() []simplex.Generator { return a.gens }

// Clone returns an action on an independent clone of the builder. The
// generator list is shared; generators carry no mutable state.
func (a *Action) Clone() *Action {
	return &Action{b: a.b.Clone(), gens: a.gens}
}

// Canonicalize translates the simplex given by vertices into the
// fundamental box: for each axis, the minimum coordinate's displacement in
// whole box widths (floor division) is undone. The result is interned via
// the builder's registry, so a conflicting vertex order surfaces here.
func (a *Action) Canonicalize(vertices ...simplex.Vertex) (simplex.Simplex, error) {
	if len(vertices) == 0 {
		return a.b.MakeSimplex()
	}
	s := simplex.New(vertices...)
	side := a.b.SideLength()
	for axis, width := range side {
		min := s[0][axis]
		for _, v := range s[1:] {
			if v[axis] < min {
				min = v[axis]
			}
		}
		if d := floorDiv(min, width); d != 0 {
			s = simplex.Translate(axis, -d*width).Apply(s)
		}
	}
	return a.b.MakeSimplex(s...)
}

// torusImages returns s together with its periodic translates: for every
// axis on whose minimal face s lies entirely, the set so far is doubled by
// translating one box width along that axis. Every image is interned.
func (a *Action) torusImages(s simplex.Simplex) ([]simplex.Simplex, error) {
	first, err := a.b.MakeSimplex(s...)
	if err != nil {
		return nil, err
	}
	images := []simplex.Simplex{first}
	for axis, width := range a.b.SideLength() {
		onFace := true
		for _, v := range s {
			if v[axis] != 0 {
				onFace = false
				break
			}
		}
		if !onFace {
			continue
		}
		tr := simplex.Translate(axis, width)
		for _, img := range images {
			shifted, err := a.b.MakeSimplex(tr.Apply(img)...)
			if err != nil {
				return nil, err
			}
			images = append(images, shifted)
		}
	}
	return images, nil
}

// Orbit returns the closure of the simplex given by vertices under all
// generators plus periodic translation, as a deterministic slice (insertion
// order of the breadth-first closure). Termination is guaranteed by the
// finiteness of the box lattice.
func (a *Action) Orbit(vertices ...simplex.Vertex) ([]simplex.Simplex, error) {
	start, err := a.Canonicalize(vertices...)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var members []simplex.Simplex
	add := func(s simplex.Simplex) bool {
		key := s.Key()
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
		members = append(members, s)
		return true
	}
	images, err := a.torusImages(start)
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		add(img)
	}
	todo := []simplex.Simplex{start}
	for len(todo) > 0 {
		s := todo[0]
		todo = todo[1:]
		for _, gen := range a.gens {
			img, err := a.Canonicalize(gen.Apply(s)...)
			if err != nil {
				return nil, err
			}
			if !add(img) {
				continue
			}
			shifted, err := a.torusImages(img)
			if err != nil {
				return nil, err
			}
			for _, t := range shifted {
				add(t)
			}
			todo = append(todo, img)
		}
	}
	return members, nil
}

// AddOrbit computes the orbit of the simplex given by vertices and inserts
// every member into the builder. This is how client code builds
// group-symmetric complexes without manual enumeration.
func (a *Action) AddOrbit(vertices ...simplex.Vertex) error {
	members, err := a.Orbit(vertices...)
	if err != nil {
		return err
	}
	for _, s := range members {
		if _, err := a.b.AddSimplex(s...); err != nil {
			return err
		}
	}
	return nil
}

// TopOrbits partitions the top-dimensional cells into disjoint orbits,
// covering the whole pool, each orbit reported once. An orbit member that
// is not a known top cell aborts with ErrInvalidAction naming the offender
// and its orbit.
func (a *Action) TopOrbits() ([][]simplex.Simplex, error) {
	top := a.b.Simplices(a.b.Dimension() + 1)
	remaining := make(map[string]struct{}, len(top))
	for _, s := range top {
		remaining[s.Key()] = struct{}{}
	}
	var orbits [][]simplex.Simplex
	for _, s := range top {
		if _, ok := remaining[s.Key()]; !ok {
			continue // already covered by an earlier orbit
		}
		members, err := a.Orbit(s...)
		if err != nil {
			return nil, err
		}
		for _, img := range members {
			if _, ok := remaining[img.Key()]; !ok {
				return nil, fmt.Errorf("%w: image (%s) of orbit of (%s)",
					ErrInvalidAction, img.Key(), s.Key())
			}
		}
		for _, img := range members {
			delete(remaining, img.Key())
		}
		orbits = append(orbits, members)
	}
	return orbits, nil
}

// floorDiv is floored integer division: the quotient rounds toward
// negative infinity, so floorDiv(-1, 2) == -1.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
