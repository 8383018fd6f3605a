// SPDX-License-Identifier: MIT
// Package decompose: sentinel error set.
// All exported functions return these sentinels and tests match them via
// errors.Is. No function panics on user input.
package decompose

import "errors"

var (
	// ErrShapeMismatch indicates the shape's axis count does not match the
	// decomposer variant invoked (Decompose3D wants 3 axes, and so on).
	ErrShapeMismatch = errors.New("decompose: shape length does not match decomposer dimensionality")

	// ErrAxisLength indicates a non-positive axis length. Axes of length 1
	// are valid and simply contribute zero positions.
	ErrAxisLength = errors.New("decompose: axis lengths must be positive")

	// ErrCardRange indicates a requested simplex cardinality outside the
	// valid range for the grid's dimensionality (1..4 in 3D, 1..3 in 2D,
	// 1..2 in 1D). The reference behavior of yielding an empty stream was
	// deliberately upgraded to an explicit error.
	ErrCardRange = errors.New("decompose: simplex cardinality out of range for grid dimensionality")

	// ErrMaskLength indicates a mask whose length differs from the grid volume.
	ErrMaskLength = errors.New("decompose: mask length must equal the product of the shape")
)
