// Package quotient builds and validates equivalence relations over the
// simplices of a builder, and collapses a complex along such a relation
// into a new, smaller cell collection.
//
// What:
//
//   - Class: an immutable set of simplices identified as one cell. All
//     members of a merged class share the identical *Class object, so
//     membership comparisons are pointer or key comparisons.
//   - Relation: the class map. Identify merges classes and recursively
//     identifies corresponding boundary faces pointwise, which is what
//     propagates a top-level gluing down to every face it implies.
//   - Validate: checks that every identification commutes with the
//     boundary maps via the positional vertex bijection (the discrete
//     statement that the gluing respects vertex order).
//   - Quotient: a new cells.Collection whose cells are the distinct
//     classes; the source builder is never mutated.
//   - TorusRelation: glues each minimal box facet to its translate on the
//     opposite face, turning the box into a torus.
//   - GroupRelation: TorusRelation plus identification of every top-cell
//     orbit of a group action.
//
// Identify maintains a proper union: after merging, every member of the
// union maps to the one merged class. (Identifying a simplex with itself is
// a no-op, and identify(a,b) followed by identify(b,c) equals
// identify(a,b,c).)
//
// Errors:
//
//	ErrUnknownSimplex - an identified simplex has no boundary entry.
//	ErrRankMismatch   - simplices of different rank cannot be identified.
//	ErrOrderMismatch  - an identification does not commute with vertex
//	                    order; reported with both conflicting vertices.
//	ErrMissingFacet   - a torus gluing partner is not in the complex.
package quotient
