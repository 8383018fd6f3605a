package cube

import "errors"

// Sentinel errors for cube placement and stride computation.
var (
	// ErrDimension indicates a center vector of unsupported length (valid: 1..3).
	ErrDimension = errors.New("cube: dimensionality must be between 1 and 3")
	// ErrCenterStrides indicates center and strides of differing lengths.
	ErrCenterStrides = errors.New("cube: center and strides must have the same length")
	// ErrEmptyShape indicates an empty shape tuple.
	ErrEmptyShape = errors.New("cube: shape must have at least one axis")
	// ErrAxisLength indicates a non-positive axis length in a shape.
	ErrAxisLength = errors.New("cube: axis lengths must be positive")
)
