// Package cells provides the dimension-indexed view of a simplicial
// complex shared by box complexes and their quotients: per-rank cell sets
// plus the boundary map, detached from any particular builder.
//
// What:
//
//   - Cell: anything with a stable Key(); concrete cells are
//     simplex.Simplex values (box complexes) or *quotient.Class values
//     (quotient complexes).
//   - Collection: per-rank cell lists and the boundary map, a read-only
//     snapshot computed on demand and never mutating its source.
//   - Validate: the discrete ∂∘∂ = 0 check, stated per cell: for faces
//     i < j of a cell, face j-1 of face i equals face i of face j.
//   - ChainComplex: the signed boundary matrices consumed by package
//     homology (face i contributes (-1)^i).
//
// Why a separate package:
//
//	Quotienting replaces simplices by equivalence classes; everything
//	downstream (consistency checking, homology) only needs keys and face
//	tuples, so both complex flavors share this one representation.
//
// Errors:
//
//	ErrBoundary - a ∂∘∂ = 0 violation, reported with both conflicting faces.
//	ErrMissing  - a cell's boundary entry is absent from the collection.
package cells
