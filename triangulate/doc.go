// Package triangulate searches for complete, consistent triangulations of
// the unit hypercube by backtracking over the orientations of its remaining
// ambiguous diagonal edges.
//
// What:
//
//   - Finder: one search state — a builder snapshot (wrapped in an
//     orbit.Action) plus the directed graph of edge orientations already
//     committed inside {0,1}^d.
//   - UnitEdges: the fixed target edge set, every vertex pair occurring in
//     some simplex of the reference Kuhn triangulation.
//   - AmbiguousEdges: unit edges not yet oriented either way.
//   - EdgeOrientations: lazy depth-first enumeration of all terminal states
//     (no ambiguous edges left). Each branch first passes a cheap
//     acyclicity pre-filter on the orientation graph alone, then the
//     authoritative check: inserting the corresponding edge orbit into a
//     cloned builder, where the group action may force a vertex-order
//     conflict elsewhere in the complex. Such conflicts prune the branch;
//     this is the one place in the library where simplex.ErrVertexOrder is
//     caught as normal control flow.
//   - ObviousEdges: ambiguous edges that fit in exactly one orientation;
//     committing them first shrinks the search tree without branching.
//   - WithAllEdgesToOrigin / WithObviousEdgesAdded / WithEdgeAdded: batch
//     seeding transitions producing new states.
//   - Ordered / LevelSets: topological order and level sets of the
//     committed orientation graph, for downstream consumers.
//
// Concurrency and resources:
//
//	The search is single-threaded; the call stack is the search stack, so
//	memory is linear in the number of ambiguous edges, not in the number of
//	explored states. Every branch works on an independent clone — siblings
//	share no mutable state. Consumers stop the enumeration by breaking out
//	of the range loop; no further mutation occurs after abandonment.
//
// Acyclicity testing and topological ordering are delegated to
// gonum.org/v1/gonum/graph.
//
// Errors:
//
//	ErrCyclic - Ordered/LevelSets called on a cyclic orientation graph.
//	Non-vertex-order failures during enumeration surface through the
//	iterator's error value and stop the search.
package triangulate
