// SPDX-License-Identifier: MIT
package simplex

import "sort"

// Complex is a simplicial complex: for each cardinality 1..MaxVertices it
// holds the set of faces of that cardinality. A Complex produced by
// NewComplex always satisfies the closure property — every vertex subset of
// a stored face is itself stored at the corresponding lower cardinality.
//
// The zero value is the empty complex and is ready to query.
// A Complex is immutable once returned; all operations produce new values.
type Complex struct {
	// sets[k] holds the faces of cardinality k; index 0 is unused.
	// A fixed-size array avoids dynamic key misses when cardinalities
	// are absent: a nil map simply reads as empty.
	sets [MaxVertices + 1]map[Simplex]struct{}
	max  int
}

// NewComplex derives the full face complex of the given maximal simplices:
// for every maximal simplex, every non-empty vertex subset becomes a face
// at its own cardinality, deduplicated across all inputs.
//
// Complexity: O(m·2^k) subsets for m maximal simplices of cardinality k ≤ 4.
func NewComplex(maximal ...Simplex) Complex {
	var c Complex
	for _, m := range maximal {
		if m.card == 0 {
			continue // zero-value simplices contribute nothing
		}
		if m.card > c.max {
			c.max = m.card
		}
		// Bitmask subset enumeration. m.verts is sorted, so every subset
		// read off in index order is already canonical.
		for mask := 1; mask < 1<<m.card; mask++ {
			var f Simplex
			for i := 0; i < m.card; i++ {
				if mask&(1<<i) != 0 {
					f.verts[f.card] = m.verts[i]
					f.card++
				}
			}
			c.add(f)
		}
	}
	return c
}

// add inserts a face, allocating the per-cardinality set lazily.
func (c *Complex) add(s Simplex) {
	if c.sets[s.card] == nil {
		c.sets[s.card] = make(map[Simplex]struct{})
	}
	c.sets[s.card][s] = struct{}{}
}

// MaxCard reports the largest cardinality present in the complex
// (0 for the empty complex). Complexity: O(1).
func (c Complex) MaxCard() int { return c.max }

// Size reports how many faces of the given cardinality the complex holds.
// Cardinalities outside 1..MaxVertices report zero. Complexity: O(1).
func (c Complex) Size(card int) int {
	if card < 1 || card > MaxVertices {
		return 0
	}
	return len(c.sets[card])
}

// Has reports whether the complex contains the given face.
// Complexity: O(1).
func (c Complex) Has(s Simplex) bool {
	if s.card < 1 || s.card > MaxVertices {
		return false
	}
	_, ok := c.sets[s.card][s]
	return ok
}

// Faces returns the faces of the given cardinality in ascending Less order,
// so repeated calls over equal complexes list faces identically.
// Returns nil when the cardinality is absent.
// Complexity: O(n log n) for n faces at that cardinality.
func (c Complex) Faces(card int) []Simplex {
	if card < 1 || card > MaxVertices || len(c.sets[card]) == 0 {
		return nil
	}
	out := make([]Simplex, 0, len(c.sets[card]))
	for s := range c.sets[card] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
