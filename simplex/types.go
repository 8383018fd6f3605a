// SPDX-License-Identifier: MIT
// Package simplex: core value types.
package simplex

import (
	"fmt"
	"strings"
)

// MaxVertices is the largest supported simplex cardinality: a tetrahedron.
// Grids of dimension 1..3 never produce anything larger.
const MaxVertices = 4

// Simplex is an immutable set of 1..MaxVertices distinct vertex indices,
// stored in ascending order. The zero value is invalid (cardinality 0);
// build simplices with New or Vertex.
//
// Vertex indices are plain ints and may be negative: templates anchored at
// a negative center offset legitimately reference corners "before" the
// origin until they are translated to a concrete grid position.
//
// Simplex is comparable and can be used directly as a map key.
type Simplex struct {
	verts [MaxVertices]int
	card  int
}

// New builds a Simplex from the given vertex indices, sorting them into
// canonical ascending order.
// Returns ErrNoVertices, ErrTooManyVertices or ErrDuplicateVertex on misuse.
// Complexity: O(k²) for k ≤ MaxVertices, effectively O(1).
func New(verts ...int) (Simplex, error) {
	if len(verts) == 0 {
		return Simplex{}, ErrNoVertices
	}
	if len(verts) > MaxVertices {
		return Simplex{}, ErrTooManyVertices
	}
	var s Simplex
	s.card = len(verts)
	copy(s.verts[:], verts)
	// Insertion sort; inputs never exceed four elements.
	for i := 1; i < s.card; i++ {
		for j := i; j > 0 && s.verts[j] < s.verts[j-1]; j-- {
			s.verts[j], s.verts[j-1] = s.verts[j-1], s.verts[j]
		}
	}
	for i := 1; i < s.card; i++ {
		if s.verts[i] == s.verts[i-1] {
			return Simplex{}, ErrDuplicateVertex
		}
	}
	return s, nil
}

// Vertex returns the 0-dimensional simplex holding a single vertex index.
// Complexity: O(1).
func Vertex(v int) Simplex {
	return Simplex{verts: [MaxVertices]int{v}, card: 1}
}

// Card reports the cardinality (number of vertices) of s.
// Complexity: O(1).
func (s Simplex) Card() int { return s.card }

// At returns the i-th vertex in ascending order, 0 ≤ i < Card.
// Out-of-range access panics, as with any Go slice: an invalid index is a
// programmer error, not a user-input condition.
func (s Simplex) At(i int) int {
	if i < 0 || i >= s.card {
		panic(fmt.Sprintf("simplex: vertex index %d out of range [0,%d)", i, s.card))
	}
	return s.verts[i]
}

// Vertices returns a fresh slice with the vertex indices in ascending order.
// Complexity: O(k), Memory: O(k).
func (s Simplex) Vertices() []int {
	out := make([]int, s.card)
	copy(out, s.verts[:s.card])
	return out
}

// Translate returns a copy of s with offset added to every vertex index.
// Translation preserves ordering and distinctness, so the result is still
// canonical. Complexity: O(1).
func (s Simplex) Translate(offset int) Simplex {
	t := s
	for i := 0; i < t.card; i++ {
		t.verts[i] += offset
	}
	return t
}

// Less orders simplices first by cardinality, then lexicographically by
// vertex tuple. Used to produce deterministic face listings.
// Complexity: O(1).
func (s Simplex) Less(o Simplex) bool {
	if s.card != o.card {
		return s.card < o.card
	}
	for i := 0; i < s.card; i++ {
		if s.verts[i] != o.verts[i] {
			return s.verts[i] < o.verts[i]
		}
	}
	return false
}

// String renders the simplex as "(v0 v1 ...)".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < s.card; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", s.verts[i])
	}
	b.WriteByte(')')
	return b.String()
}
