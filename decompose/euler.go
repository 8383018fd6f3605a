// SPDX-License-Identifier: MIT
package decompose

import "github.com/katalvlaran/topogrid/simplex"

// decomposer is the shared shape+cardinality signature of the three
// Decompose variants.
type decomposer func(shape []int, card int) (*Stream, error)

// Counts3D returns the per-cardinality census of a 3D grid triangulation:
// counts[0] vertices, counts[1] edges, counts[2] triangles, counts[3]
// tetrahedra.
// Complexity: O(#simplices) time, O(1) memory beyond the counters.
func Counts3D(shape []int) ([]int, error) {
	return counts(shape, 4, Decompose3D)
}

// Counts2D returns the per-cardinality census of a 2D grid triangulation:
// vertices, edges, triangles.
func Counts2D(shape []int) ([]int, error) {
	return counts(shape, 3, Decompose2D)
}

// Counts1D returns the per-cardinality census of a 1D lattice:
// vertices, segments.
func Counts1D(shape []int) ([]int, error) {
	return counts(shape, 2, Decompose1D)
}

func counts(shape []int, maxCard int, dec decomposer) ([]int, error) {
	out := make([]int, maxCard)
	for card := 1; card <= maxCard; card++ {
		st, err := dec(shape, card)
		if err != nil {
			return nil, err
		}
		out[card-1] = st.Count()
	}
	return out, nil
}

// EulerCharacteristic3D folds the 3D census with alternating sign:
// vertices − edges + triangles − tetrahedra. Every solid rectangular grid
// is contractible, so the result is 1 for any valid shape — the standing
// correctness oracle for the whole decomposition.
// Complexity: O(#simplices).
func EulerCharacteristic3D(shape []int) (int, error) {
	cs, err := Counts3D(shape)
	if err != nil {
		return 0, err
	}
	return alternatingSum(cs), nil
}

// EulerCharacteristic2D is the 2D analogue: vertices − edges + triangles.
func EulerCharacteristic2D(shape []int) (int, error) {
	cs, err := Counts2D(shape)
	if err != nil {
		return 0, err
	}
	return alternatingSum(cs), nil
}

// EulerCharacteristic1D is the 1D analogue: vertices − segments.
func EulerCharacteristic1D(shape []int) (int, error) {
	cs, err := Counts1D(shape)
	if err != nil {
		return 0, err
	}
	return alternatingSum(cs), nil
}

// alternatingSum folds counts[0] − counts[1] + counts[2] − ...
// (odd cardinalities positive, even negative).
func alternatingSum(counts []int) int {
	chi := 0
	for i, n := range counts {
		if i%2 == 0 {
			chi += n
		} else {
			chi -= n
		}
	}
	return chi
}

// EulerCharacteristicMask3D computes the Euler characteristic of the
// region of a 3D grid selected by a binary mask: only simplices whose
// vertices all lie inside the mask are counted. Simplices fully inside
// the mask form a subcomplex (any vertex subset of a counted simplex is
// itself counted), so the alternating sum is a true Euler characteristic.
//
// mask is indexed by flattened row-major vertex index and must have
// exactly ∏shape elements, else ErrMaskLength.
// Complexity: O(#simplices of the full grid).
func EulerCharacteristicMask3D(shape []int, mask []bool) (int, error) {
	return maskedEuler(shape, mask, 4, Decompose3D)
}

// EulerCharacteristicMask2D is the 2D analogue of EulerCharacteristicMask3D.
func EulerCharacteristicMask2D(shape []int, mask []bool) (int, error) {
	return maskedEuler(shape, mask, 3, Decompose2D)
}

func maskedEuler(shape []int, mask []bool, maxCard int, dec decomposer) (int, error) {
	// The vertex stream's length is the grid volume; validating the mask
	// against it lets shape errors win over mask errors.
	vs, err := dec(shape, 1)
	if err != nil {
		return 0, err
	}
	if len(mask) != vs.total {
		return 0, ErrMaskLength
	}
	chi := 0
	for card := 1; card <= maxCard; card++ {
		st, err := dec(shape, card)
		if err != nil {
			return 0, err
		}
		sign := 1
		if card%2 == 0 {
			sign = -1
		}
		for {
			s, ok := st.Next()
			if !ok {
				break
			}
			if maskCovers(mask, s) {
				chi += sign
			}
		}
	}
	return chi, nil
}

// maskCovers reports whether every vertex of s is set in mask.
func maskCovers(mask []bool, s simplex.Simplex) bool {
	for i := 0; i < s.Card(); i++ {
		if !mask[s.At(i)] {
			return false
		}
	}
	return true
}
