// Package simplex defines the vertex and simplex value types used by every
// other package, and the Registry that enforces the global vertex-order
// invariant.
//
// What:
//
//   - Vertex: an integer coordinate tuple in ℤ^d.
//   - Simplex: an ordered sequence of distinct vertices; order is semantic.
//   - Registry: interns simplices under their canonical (sorted) key; the
//     first order submitted for a vertex set wins, any later conflicting
//     order fails with *VertexOrderError.
//   - Faces: the k+1 remove-one faces of a k-simplex, in removal order.
//   - Generator: a Vertex → Vertex map (translation, permutation, or a
//     composition), applied componentwise to simplices.
//
// Why first-writer-wins:
//
//	Accidentally submitting the same vertex set with two different orders is
//	the primary construction error in a Δ-complex; the registry detects it
//	instead of silently picking an orientation. The triangulation search in
//	package triangulate relies on exactly this failure as its pruning signal.
//
// Errors:
//
//	ErrVertexOrder - a vertex set was re-submitted with a conflicting order;
//	                 the typed *VertexOrderError names both orders.
package simplex
