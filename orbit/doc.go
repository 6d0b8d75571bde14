// Package orbit computes closures of simplices under a finite group of
// vertex generators combined with periodic (torus) translation, and inserts
// whole orbits into a builder at once.
//
// What:
//
//   - Action: a builder plus a list of simplex.Generator maps.
//   - Canonicalize: translates any lattice translate of a simplex back into
//     the fundamental box, one floor-division per axis.
//   - Orbit: breadth-first closure of a simplex under all generators plus
//     the periodic translates of simplices lying on a minimal box face.
//   - TopOrbits: partitions the top-dimensional cells into disjoint orbits,
//     failing loudly when the group action does not preserve the complex.
//   - AddOrbit: the standard way to build group-symmetric complexes —
//     computes the orbit and inserts every member.
//
// Why canonicalize first:
//
//	Generators are free to move simplices outside the box; projecting every
//	image back into the fundamental region keeps the ambient vertex set
//	finite, which is what guarantees the closure terminates.
//
// Orbit closure is checked at use sites, not assumed: TopOrbits verifies
// every orbit member is a known top cell before yielding the orbit.
//
// Errors:
//
//	ErrInvalidAction       - an orbit member is not a known top cell: the
//	                         supplied generators do not preserve the complex.
//	simplex.ErrVertexOrder - an orbit image conflicts with a recorded vertex
//	                         order; propagated for the search to catch.
package orbit
