package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topogrid/simplex"
)

// kuhnTetrahedra builds the canonical 6-tetrahedron triangulation of the
// unit cube (corners numbered 0..7, axis 0 as bit 0).
func kuhnTetrahedra(t *testing.T) []simplex.Simplex {
	t.Helper()
	tuples := [][]int{
		{0, 3, 2, 7},
		{0, 6, 2, 7},
		{0, 7, 5, 4},
		{0, 7, 5, 1},
		{0, 7, 4, 6},
		{0, 3, 1, 7},
	}
	out := make([]simplex.Simplex, 0, len(tuples))
	for _, tp := range tuples {
		s, err := simplex.New(tp...)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

// TestNewComplex_CubeCensus verifies the face counts of the 6-tetrahedron
// cube: 8 vertices, 19 edges (12 cube edges + 6 face diagonals + 1 body
// diagonal), 18 triangles, 6 tetrahedra. Their alternating sum is 1.
func TestNewComplex_CubeCensus(t *testing.T) {
	c := simplex.NewComplex(kuhnTetrahedra(t)...)

	require.Equal(t, 4, c.MaxCard())
	require.Equal(t, 8, c.Size(1))
	require.Equal(t, 19, c.Size(2))
	require.Equal(t, 18, c.Size(3))
	require.Equal(t, 6, c.Size(4))
	require.Equal(t, 1, c.Size(1)-c.Size(2)+c.Size(3)-c.Size(4))
}

// TestNewComplex_Closure verifies the closure property: every (k−1)-subset
// of a stored k-face is itself stored at cardinality k−1.
func TestNewComplex_Closure(t *testing.T) {
	c := simplex.NewComplex(kuhnTetrahedra(t)...)

	for card := 2; card <= c.MaxCard(); card++ {
		for _, face := range c.Faces(card) {
			verts := face.Vertices()
			for drop := 0; drop < len(verts); drop++ {
				sub := make([]int, 0, len(verts)-1)
				for i, v := range verts {
					if i != drop {
						sub = append(sub, v)
					}
				}
				f, err := simplex.New(sub...)
				require.NoError(t, err)
				require.Truef(t, c.Has(f), "missing sub-face %v of %v", f, face)
			}
		}
	}
}

// TestNewComplex_Deduplicates checks that faces shared between maximal
// simplices are stored once.
func TestNewComplex_Deduplicates(t *testing.T) {
	a, err := simplex.New(0, 1, 3)
	require.NoError(t, err)
	b, err := simplex.New(0, 2, 3)
	require.NoError(t, err)

	c := simplex.NewComplex(a, b)
	// The two triangles of a unit square share the diagonal (0,3) and the
	// vertices 0 and 3.
	require.Equal(t, 4, c.Size(1))
	require.Equal(t, 5, c.Size(2))
	require.Equal(t, 2, c.Size(3))
}

// TestComplex_ZeroValue exercises queries on the empty complex.
func TestComplex_ZeroValue(t *testing.T) {
	var c simplex.Complex
	require.Equal(t, 0, c.MaxCard())
	require.Equal(t, 0, c.Size(1))
	require.Nil(t, c.Faces(2))
	require.False(t, c.Has(simplex.Vertex(0)))
}

// TestFaces_SortedDeterministic verifies the ascending Less ordering of Faces.
func TestFaces_SortedDeterministic(t *testing.T) {
	c := simplex.NewComplex(kuhnTetrahedra(t)...)
	for card := 1; card <= 4; card++ {
		faces := c.Faces(card)
		require.Len(t, faces, c.Size(card))
		for i := 1; i < len(faces); i++ {
			require.Truef(t, faces[i-1].Less(faces[i]),
				"Faces(%d) not sorted at %d: %v !< %v", card, i, faces[i-1], faces[i])
		}
	}
}
