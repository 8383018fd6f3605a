// SPDX-License-Identifier: MIT
package decompose

import (
	"github.com/katalvlaran/topogrid/cube"
)

// Decompose3D returns a lazy stream of every simplex with card vertices
// (1 = vertex .. 4 = tetrahedron) in the triangulation of a 3D grid of the
// given shape, each exactly once. Vertices are flattened row-major indices
// into the grid.
//
// Strata: interior voxels under the full 3D strides, then the three
// axis-pair boundary slabs, then the three boundary edge lines. Axes of
// length 1 contribute zero positions and are handled gracefully.
//
// Errors: ErrShapeMismatch unless len(shape) == 3; ErrAxisLength for axes
// < 1; ErrCardRange unless 1 ≤ card ≤ 4.
//
// Complexity: O(1) setup; streaming is O(#simplices) total.
func Decompose3D(shape []int, card int) (*Stream, error) {
	if len(shape) != 3 {
		return nil, ErrShapeMismatch
	}
	return newStream(shape, card, 4)
}

// Decompose2D is the 2D analogue of Decompose3D: the grid itself is the
// only slab, followed by the two boundary edge lines. Valid cardinalities
// are 1..3 (vertex, edge, triangle).
func Decompose2D(shape []int, card int) (*Stream, error) {
	if len(shape) != 2 {
		return nil, ErrShapeMismatch
	}
	return newStream(shape, card, 3)
}

// Decompose1D decomposes a 1D lattice: its vertices and unit segments.
// Valid cardinalities are 1..2.
func Decompose1D(shape []int, card int) (*Stream, error) {
	if len(shape) != 1 {
		return nil, ErrShapeMismatch
	}
	return newStream(shape, card, 2)
}

// newStream validates shape and cardinality, then assembles the strata.
func newStream(shape []int, card, maxCard int) (*Stream, error) {
	total := 1
	for _, n := range shape {
		if n < 1 {
			return nil, ErrAxisLength
		}
		total *= n
	}
	if card < 1 || card > maxCard {
		return nil, ErrCardRange
	}

	// Vertices need no template machinery: every lattice point appears
	// exactly once as its own flattened index.
	if card == 1 {
		return &Stream{card: 1, total: total}, nil
	}

	strides, err := cube.Strides(shape)
	if err != nil {
		return nil, err
	}

	s := &Stream{card: card}
	appendStratum := func(subShape, subStrides []int) error {
		uc, err := uniqueComplex(subStrides)
		if err != nil {
			return err
		}
		if st := newStratum(uc.Faces(card), subShape, subStrides); st != nil {
			s.strata = append(s.strata, st)
		}
		return nil
	}

	// Full-dimensional stratum: the whole grid under its own strides.
	if err := appendStratum(shape, strides); err != nil {
		return nil, err
	}

	// Boundary slabs: every axis pair of a 3D grid.
	if len(shape) == 3 {
		pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
		for _, p := range pairs {
			subShape := []int{shape[p[0]], shape[p[1]]}
			subStrides := []int{strides[p[0]], strides[p[1]]}
			if err := appendStratum(subShape, subStrides); err != nil {
				return nil, err
			}
		}
	}

	// Boundary edges: every axis on its own.
	if len(shape) >= 2 {
		for a := range shape {
			if err := appendStratum([]int{shape[a]}, []int{strides[a]}); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}
