// SPDX-License-Identifier: MIT
package simplex

// Join returns the union of the given complexes: per cardinality, the result
// set is the set union of every input's faces at that cardinality.
// Cardinalities absent from an input contribute nothing. Joining zero
// complexes yields the empty complex; joining one returns an equal copy.
//
// Complexity: O(total faces), Memory: O(total faces).
func Join(cs ...Complex) Complex {
	var out Complex
	for _, c := range cs {
		if c.max > out.max {
			out.max = c.max
		}
		for card := 1; card <= MaxVertices; card++ {
			for s := range c.sets[card] {
				out.add(s)
			}
		}
	}
	return out
}

// Difference returns a complex holding every face of c that o does not
// contain, per cardinality. The result's faces are a subset of c's, so the
// receiver's closure property is NOT necessarily preserved — the result is
// a plain face collection, which is exactly what unique-face assignment
// needs.
//
// Complexity: O(faces of c), Memory: O(faces kept).
func (c Complex) Difference(o Complex) Complex {
	var out Complex
	for card := 1; card <= MaxVertices; card++ {
		for s := range c.sets[card] {
			if !o.Has(s) {
				out.add(s)
				if card > out.max {
					out.max = card
				}
			}
		}
	}
	return out
}
