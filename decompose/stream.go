// SPDX-License-Identifier: MIT
package decompose

import "github.com/katalvlaran/topogrid/simplex"

// Stream is a lazy, pull-based enumeration of the simplices of one
// cardinality in a grid triangulation. Each pull advances one simplex;
// nothing beyond the fixed per-stratum templates and a position cursor is
// ever resident, so arbitrarily large grids stream in O(1) extra memory.
//
// A Stream is single-use and not safe for concurrent pulls; the emitted
// set is position-derived and order-independent, so a consumer may stop
// at any point with nothing to clean up.
type Stream struct {
	card int

	// Vertex mode (card == 1): plain 0..total−1 counter, no templates.
	total int
	nextV int

	// Template mode (card > 1): strata consumed front to back.
	strata []*stratum
	si     int
}

// stratum walks one iteration range (interior voxels, a boundary slab, or
// a boundary edge line): a fixed unique-face template translated to every
// position of the range.
type stratum struct {
	faces   []simplex.Simplex // unique faces of the requested cardinality
	extents []int             // positions per axis (axis length − 1)
	strides []int             // flattened-index stride per axis
	cursor  []int             // current multi-index, odometer order
	base    int               // flattened index of the current position
	fi      int               // next face within the current position
	done    bool
}

// newStratum prepares a stratum, or returns nil when it cannot contribute:
// no faces at this cardinality, or any axis too short for even one
// placement (degenerate length-1 axes land here).
func newStratum(faces []simplex.Simplex, subShape, subStrides []int) *stratum {
	if len(faces) == 0 {
		return nil
	}
	extents := make([]int, len(subShape))
	for a, n := range subShape {
		if n-1 < 1 {
			return nil
		}
		extents[a] = n - 1
	}
	return &stratum{
		faces:   faces,
		extents: extents,
		strides: subStrides,
		cursor:  make([]int, len(subShape)),
	}
}

// next yields the next translated face of the stratum.
func (st *stratum) next() (simplex.Simplex, bool) {
	if st.done {
		return simplex.Simplex{}, false
	}
	s := st.faces[st.fi].Translate(st.base)
	if st.fi++; st.fi == len(st.faces) {
		st.fi = 0
		st.advance()
	}
	return s, true
}

// advance steps the position odometer (last axis fastest) and recomputes
// the flattened base index; marks the stratum done past the final position.
func (st *stratum) advance() {
	for a := len(st.cursor) - 1; a >= 0; a-- {
		if st.cursor[a]++; st.cursor[a] < st.extents[a] {
			st.rebase()
			return
		}
		st.cursor[a] = 0
	}
	st.done = true
}

func (st *stratum) rebase() {
	b := 0
	for a, i := range st.cursor {
		b += i * st.strides[a]
	}
	st.base = b
}

// Card reports the cardinality of the simplices this stream yields.
// Complexity: O(1).
func (s *Stream) Card() int { return s.card }

// Next pulls the next simplex. The second return is false once the stream
// is exhausted; further calls keep returning false.
// Complexity: O(1) amortized per pull.
func (s *Stream) Next() (simplex.Simplex, bool) {
	if s.card == 1 {
		if s.nextV >= s.total {
			return simplex.Simplex{}, false
		}
		v := simplex.Vertex(s.nextV)
		s.nextV++
		return v, true
	}
	for s.si < len(s.strata) {
		if f, ok := s.strata[s.si].next(); ok {
			return f, true
		}
		s.si++
	}
	return simplex.Simplex{}, false
}

// Collect drains the stream into a slice. Convenience for small grids and
// tests; prefer Next for large volumes.
// Complexity: O(#simplices) time and memory.
func (s *Stream) Collect() []simplex.Simplex {
	var out []simplex.Simplex
	for {
		f, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, f)
	}
}

// Count drains the stream and reports how many simplices it produced.
// Complexity: O(#simplices) time, O(1) memory.
func (s *Stream) Count() int {
	n := 0
	for {
		if _, ok := s.Next(); !ok {
			return n
		}
		n++
	}
}
