// SPDX-License-Identifier: MIT
package decompose

import (
	"github.com/katalvlaran/topogrid/cube"
	"github.com/katalvlaran/topogrid/simplex"
)

// Neighbor offsets per dimensionality: the cube placements that claim
// faces before the origin cube does. Exactly these sets — no more, no
// fewer — make the translated unique-face template tile a stratum with
// every face assigned once. An incorrect set breaks the exactly-once
// invariant silently, which is why the Euler oracle (χ = 1 on solid
// grids) is part of the test suite rather than inspection alone.
var (
	neighbors3D = [][]int{
		{0, 0, -1},
		{0, -1, 0},
		{0, -1, -1},
		{-1, 0, 0},
		{-1, 0, -1},
		{-1, -1, 0},
		{-1, -1, -1},
	}
	neighbors2D = [][]int{
		{0, -1},
		{-1, 0},
		{-1, -1},
	}
	neighbors1D = [][]int{
		{-1},
	}
)

// uniqueComplex computes the faces the origin cube owns exclusively under
// the given strides: its own complex minus the union of its earlier
// neighbors' complexes. len(strides) selects the neighbor set.
//
// Complexity: O(1) — a handful of fixed-size cube complexes.
func uniqueComplex(strides []int) (simplex.Complex, error) {
	var offsets [][]int
	switch len(strides) {
	case 3:
		offsets = neighbors3D
	case 2:
		offsets = neighbors2D
	case 1:
		offsets = neighbors1D
	default:
		return simplex.Complex{}, ErrShapeMismatch
	}

	origin := make([]int, len(strides))
	own, err := cube.Triangulate(origin, strides)
	if err != nil {
		return simplex.Complex{}, err
	}

	claimed := make([]simplex.Complex, 0, len(offsets))
	for _, off := range offsets {
		c, err := cube.Triangulate(off, strides)
		if err != nil {
			return simplex.Complex{}, err
		}
		claimed = append(claimed, c)
	}

	return own.Difference(simplex.Join(claimed...)), nil
}
