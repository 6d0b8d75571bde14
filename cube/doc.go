// Package cube provides reference triangulations of hypercubes: the Kuhn
// triangulation of the unit cube {0,1}^d, triangulations of arbitrary box
// cells with a prescribed vertex order, coordinate filters, and a helper
// that fills a whole box complex cell by cell.
//
// What:
//
//   - Unit: the d! simplices of the Kuhn triangulation of {0,1}^d, one
//     monotone vertex chain from the origin to (1,…,1) per permutation of
//     the axes. There is not much sense in the choice of reference
//     triangulation; this one is simple and fixed.
//   - Triangulation: the Kuhn triangulation of a box cell whose corners are
//     given in a prescribed order; each simplex's vertices are sorted by
//     that order, which decides the orientation of every edge.
//   - Filter: per-axis admissible coordinate sets, used to cut the unit
//     cube out of a larger complex.
//   - TriangulateBox: inserts the Kuhn triangulation of every lattice cell
//     of a builder's box, corners in lexicographic order. Lexicographic
//     order is global, so shared faces of neighboring cells agree and the
//     vertex-order invariant holds across the whole box.
//
// Errors:
//
//	ErrNoCorners  - a triangulation was requested with no corners.
//	ErrCornerCount - the corner count is not 2^d.
//	ErrDegenerate - a box cell has zero extent along some axis.
package cube
