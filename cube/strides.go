// SPDX-License-Identifier: MIT
package cube

// Strides returns the row-major (C-order) element strides for an array of
// the given shape: the last axis has stride 1, each earlier axis the
// product of all later axis lengths. A flattened index i decodes back to
// N-D coordinates by successive division, bit-exact with any C-order
// consumer.
//
// Returns ErrEmptyShape for a zero-length shape and ErrAxisLength when any
// axis is < 1. Complexity: O(d).
func Strides(shape []int) ([]int, error) {
	if len(shape) == 0 {
		return nil, ErrEmptyShape
	}
	for _, n := range shape {
		if n < 1 {
			return nil, ErrAxisLength
		}
	}
	st := make([]int, len(shape))
	st[len(shape)-1] = 1
	for a := len(shape) - 2; a >= 0; a-- {
		st[a] = st[a+1] * shape[a+1]
	}
	return st, nil
}
