// Package cube instantiates the fixed unit-hypercube triangulation at a
// grid position and derives its face complex.
//
// What:
//
//   - Triangulate places the canonical triangulation of a unit cube
//     (6 tetrahedra in 3D, 2 triangles in 2D, 1 segment in 1D) at a given
//     center offset under the grid's flattened-index strides, and returns
//     all of its faces as a simplex.Complex.
//   - Strides computes the row-major (C-order) element strides of a shape,
//     the convention every flattened vertex index in this module uses:
//     the last axis varies fastest, axis 0 slowest.
//
// Corner numbering:
//
//	Corner c of a d-cube (0 ≤ c < 2^d) takes bit a of c along axis a, with
//	axis 0 as bit 0, and flattens to Σ_a (center[a]+bit_a)·strides[a].
//	The maximal-simplex templates are written against exactly this
//	numbering; reordering the corners silently yields a wrong
//	triangulation, which is why the enumeration lives in one place.
//
// Complexity:
//
//   - Triangulate: O(2^d) corners + O(m·2^k) faces, all constants for d ≤ 3.
//   - Strides: O(d).
//
// Errors:
//
//   - ErrDimension: center length outside 1..3.
//   - ErrCenterStrides: center and strides lengths differ.
//   - ErrEmptyShape, ErrAxisLength: invalid shape for Strides.
package cube
