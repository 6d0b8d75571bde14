// Package builder constructs simplicial complexes over the lattice points
// of an integer box, maintaining the dimension-indexed simplex table and the
// boundary map.
//
// What:
//
//   - New(sideLengths...) declares a box [0,s_0]×…×[0,s_{d-1}] with lattice
//     vertices.
//   - AddSimplex inserts a simplex and, recursively, every face down to the
//     empty simplex, recording each boundary as an ordered face tuple.
//   - FacetsAtBoundary finds the codimension-1 facets lying on a box face,
//     the gluing sites for torus identification.
//   - LatticeEdges enumerates the axis-parallel unit edges of the lattice,
//     the seed pool for the triangulation search.
//   - Clone produces a fully independent copy (registry included) so the
//     backtracking search can mutate per-branch snapshots.
//   - Cells exposes the complex as a cells.Collection for validation,
//     quotienting, and homology.
//
// Why recursive insertion:
//
//	Inserting a top-dimensional simplex forces insertion of every face, so a
//	complex built through AddSimplex is complete by construction and its
//	boundary map is total. Insertion is idempotent: re-adding a simplex
//	returns the interned one without re-deriving structure.
//
// Complexity:
//
//   - AddSimplex: O(2^k · k) interning operations for a rank-k simplex
//     (every face chain), amortized far lower on re-insertion.
//   - FacetsAtBoundary: O(#facets · k).
//
// Errors:
//
//	ErrSideLength          - a declared side length is not positive.
//	ErrOutOfBox            - a vertex lies outside the declared box.
//	ErrDimension           - a vertex has the wrong number of coordinates.
//	simplex.ErrVertexOrder - propagated unchanged from the registry.
package builder
