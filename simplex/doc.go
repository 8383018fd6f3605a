// Package simplex provides the combinatorial building blocks for grid
// triangulation: simplices (sorted tuples of vertex indices) and face
// complexes (per-cardinality simplex sets with the closure property).
//
// What:
//
//   - Simplex is an immutable, comparable tuple of 1..MaxVertices distinct
//     vertex indices, kept in ascending order (canonical form).
//   - Complex maps cardinality (number of vertices) to the set of faces of
//     that cardinality. NewComplex derives every sub-face of a list of
//     maximal simplices, so the result always satisfies closure.
//   - Join merges complexes per cardinality (set union); Difference removes
//     one complex's faces from another (set difference).
//
// Why:
//
//   - Cube triangulation: derive all faces of a tetrahedral template once,
//     then translate cheaply across a grid.
//   - De-duplication: the union/difference pair is what assigns each face of
//     a grid triangulation to exactly one cube placement.
//
// Cardinality vs. geometric dimension: a simplex on k vertices has geometric
// dimension k−1. This package indexes everything by cardinality k (1 = vertex,
// 2 = edge, 3 = triangle, 4 = tetrahedron).
//
// Complexity:
//
//   - NewComplex: O(m·2^k) for m maximal simplices of cardinality k (k ≤ 4).
//   - Join / Difference: O(total faces), Memory: O(total faces).
//
// Errors:
//
//   - ErrNoVertices: a simplex needs at least one vertex.
//   - ErrTooManyVertices: more than MaxVertices vertices supplied.
//   - ErrDuplicateVertex: vertex indices must be distinct.
package simplex
