// Package homology computes the homology groups of an integer chain
// complex: one free ℤ-module per dimension, boundary operators given as
// integer matrices, invariants extracted via the Smith normal form.
//
// What:
//
//   - Matrix: a small dense row-major integer matrix.
//   - ChainComplex: cell counts per dimension plus boundary matrices
//     ∂_k : C_k → C_{k-1}; Validate checks ∂∘∂ = 0 as a matrix identity.
//   - Group: the homology group H_k as free rank plus torsion invariant
//     factors (each dividing the next).
//   - SmithNormalForm: the invariant factors of an integer matrix.
//
// Why in this repository:
//
//	The complex-building packages only expose simplex tables and boundary
//	maps; this package is their downstream consumer, kept separate so it
//	knows nothing about simplices — only matrices. Exact integer arithmetic
//	is required because torsion is invisible over the rationals.
//
// Homology is unreduced by default: a contractible complex has H_0 = ℤ.
// Pass Reduced() to subtract the augmentation, matching the convention in
// which contractible complexes have vanishing homology everywhere.
//
// Complexity: Smith normal form is O(min(r,c) · r · c) arithmetic
// operations with small-pivot selection; fine for the small complexes this
// library builds, not tuned for large sparse chain complexes.
//
// Errors:
//
//	ErrShape - boundary matrix dimensions disagree with the cell counts.
package homology
