// Package torsioncupproduct assembles simplicial models of tori and torus
// quotients from lattice points in an integer box, and searches for
// consistent triangulations of the unit hypercube.
//
// What is in the box?
//
//	simplex/     — ordered simplices, the canonical-key registry enforcing
//	               the global vertex-order invariant, vertex generators
//	builder/     — recursive boundary construction of box complexes
//	cells/       — dimension-indexed cell collections, ∂∘∂ = 0 validation
//	homology/    — integer chain complexes and Smith normal form
//	quotient/    — equivalence classes of simplices, torus gluing, group
//	               quotients
//	orbit/       — closure of simplices under symmetry groups and periodic
//	               translation
//	cube/        — reference (Kuhn) triangulations of hypercubes
//	triangulate/ — backtracking search over acyclic edge orientations
//
// The central discipline is vertex order: every simplex carries an ordered
// vertex list, and the same vertex set may only ever be used with one order.
// Quotients of a complex are valid exactly because this order survives the
// gluing, and the triangulation search works by probing which orders can
// survive at all.
//
// Data flows bottom-up: builder interns every simplex through simplex,
// quotient reads builder's boundary maps, orbit feeds simplices back into
// builder, and triangulate orchestrates all of them while keeping a directed
// graph of committed edge orientations as its consistency oracle.
//
// Intended for small dimension (2–5); the search is exponential by nature.
package torsioncupproduct
