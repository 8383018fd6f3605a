// SPDX-License-Identifier: MIT
package simplex

import "errors"

// Sentinel errors for simplex construction. Algorithms return these
// sentinels and callers match them via errors.Is; nothing here panics
// on user input.
var (
	// ErrNoVertices indicates an attempt to build a simplex from zero vertices.
	ErrNoVertices = errors.New("simplex: simplex needs at least one vertex")
	// ErrTooManyVertices indicates more than MaxVertices vertices were supplied.
	ErrTooManyVertices = errors.New("simplex: too many vertices for a simplex")
	// ErrDuplicateVertex indicates repeated vertex indices in one simplex.
	ErrDuplicateVertex = errors.New("simplex: vertex indices must be distinct")
)
