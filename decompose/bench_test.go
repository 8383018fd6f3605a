package decompose_test

import (
	"testing"

	"github.com/katalvlaran/topogrid/decompose"
)

// BenchmarkDecompose3D_Tetrahedra streams every tetrahedron of a 50³ grid.
// Measures the per-pull cost of the lazy stream; the grid itself is never
// materialized. Complexity: O(volume).
func BenchmarkDecompose3D_Tetrahedra(b *testing.B) {
	shape := []int{50, 50, 50}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st, err := decompose.Decompose3D(shape, 4)
		if err != nil {
			b.Fatalf("Decompose3D failed: %v", err)
		}
		_ = st.Count()
	}
}

// BenchmarkEulerCharacteristic3D folds all four cardinalities of a 20³
// grid. Complexity: O(volume) per cardinality.
func BenchmarkEulerCharacteristic3D(b *testing.B) {
	shape := []int{20, 20, 20}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chi, err := decompose.EulerCharacteristic3D(shape)
		if err != nil {
			b.Fatalf("EulerCharacteristic3D failed: %v", err)
		}
		if chi != 1 {
			b.Fatalf("χ = %d; want 1", chi)
		}
	}
}

// BenchmarkEulerCharacteristicMask3D measures the masked variant on a 20³
// grid with a solid half-space mask.
func BenchmarkEulerCharacteristicMask3D(b *testing.B) {
	shape := []int{20, 20, 20}
	mask := make([]bool, 20*20*20)
	for i := range mask {
		mask[i] = i < len(mask)/2
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decompose.EulerCharacteristicMask3D(shape, mask); err != nil {
			b.Fatalf("EulerCharacteristicMask3D failed: %v", err)
		}
	}
}
