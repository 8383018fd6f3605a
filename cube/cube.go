// SPDX-License-Identifier: MIT
package cube

import (
	"github.com/katalvlaran/topogrid/simplex"
)

// Maximal-simplex templates per dimensionality, written against the corner
// numbering documented in doc.go. Package-level and never mutated.
//
// The 3D template is the Kuhn triangulation of the cube: six tetrahedra,
// all sharing the main diagonal 0–7.
var (
	maximal3D = [][]int{
		{0, 3, 2, 7},
		{0, 6, 2, 7},
		{0, 7, 5, 4},
		{0, 7, 5, 1},
		{0, 7, 4, 6},
		{0, 3, 1, 7},
	}
	maximal2D = [][]int{
		{0, 1, 3},
		{0, 2, 3},
	}
	maximal1D = [][]int{
		{0, 1},
	}
)

// Triangulate places the unit-cube triangulation with corners
// center[a]..center[a]+1 along each axis, under the given strides, and
// returns its full face complex. len(center) selects the dimensionality
// (1, 2 or 3) and must equal len(strides).
//
// Corner flattening: corner c gets index Σ_a (center[a]+bit_a(c))·strides[a],
// with axis 0 as bit 0 (axis 0 varies fastest across corner numbers).
// Centers with components −1 are legal and produce negative corner indices;
// they exist only to be pooled and subtracted, never emitted.
//
// Complexity: O(1) — all template sizes are fixed constants.
func Triangulate(center, strides []int) (simplex.Complex, error) {
	d := len(center)
	if d < 1 || d > 3 {
		return simplex.Complex{}, ErrDimension
	}
	if len(strides) != d {
		return simplex.Complex{}, ErrCenterStrides
	}

	corners := make([]int, 1<<d)
	for c := range corners {
		idx := 0
		for a := 0; a < d; a++ {
			idx += (center[a] + (c>>a)&1) * strides[a]
		}
		corners[c] = idx
	}

	var template [][]int
	switch d {
	case 3:
		template = maximal3D
	case 2:
		template = maximal2D
	default:
		template = maximal1D
	}

	maximal := make([]simplex.Simplex, 0, len(template))
	for _, m := range template {
		verts := make([]int, len(m))
		for i, corner := range m {
			verts[i] = corners[corner]
		}
		s, err := simplex.New(verts...)
		if err != nil {
			// Distinct corners under valid strides can never collide;
			// reaching this means the strides alias two corners.
			return simplex.Complex{}, err
		}
		maximal = append(maximal, s)
	}

	return simplex.NewComplex(maximal...), nil
}
