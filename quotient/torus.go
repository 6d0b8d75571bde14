package quotient

import (
	"errors"
	"fmt"

	"github.com/vbraun/torsion-cup-product/builder"
	"github.com/vbraun/torsion-cup-product/orbit"
	"github.com/vbraun/torsion-cup-product/simplex"
)

// ErrMissingFacet indicates that the translate of a minimal boundary facet
// is not itself a facet of the complex, so the opposite box faces cannot be
// glued.
var ErrMissingFacet = errors.New("quotient: translated facet not in complex")

// TorusRelation glues the opposite boundary faces of the box: for each
// axis, every facet on the minimal face is identified with its translate by
// one box width, which must already be a facet of the complex. The
// resulting quotient is the d-dimensional torus model of the complex.
func TorusRelation(b *builder.Builder) (*Relation, error) {
	r := New(b)
	side := b.SideLength()
	for axis := 0; axis < b.Dimension(); axis++ {
		translate := simplex.Translate(axis, side[axis])
		for _, inner := range b.FacetsAtBoundary(axis, true) {
			outer, err := b.MakeSimplex(translate.Apply(inner)...)
			if err != nil {
				return nil, fmt.Errorf("gluing axis %d: %w", axis, err)
			}
			if !b.Has(outer) {
				return nil, fmt.Errorf("%w: (%s) on axis %d", ErrMissingFacet, outer.Key(), axis)
			}
			if err := r.Identify(outer, inner); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// GroupRelation extends TorusRelation with the group action: every orbit of
// top-dimensional cells under the action is identified into one class. The
// quotient of the resulting relation is the torus modulo the group.
func GroupRelation(a *orbit.Action) (*Relation, error) {
	r, err := TorusRelation(a.Builder())
	if err != nil {
		return nil, err
	}
	orbits, err := a.TopOrbits()
	if err != nil {
		return nil, err
	}
	for _, members := range orbits {
		if err := r.Identify(members...); err != nil {
			return nil, err
		}
	}
	return r, nil
}
