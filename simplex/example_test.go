// File: simplex/example_test.go
package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/topogrid/simplex"
)

// ExampleNewComplex demonstrates deriving the full face complex of a single
// triangle: three vertices, three edges, one triangle.
func ExampleNewComplex() {
	tri, _ := simplex.New(4, 0, 2) // canonicalized to (0 2 4)
	c := simplex.NewComplex(tri)

	for card := 1; card <= c.MaxCard(); card++ {
		fmt.Printf("cardinality %d:", card)
		for _, f := range c.Faces(card) {
			fmt.Printf(" %v", f)
		}
		fmt.Println()
	}

	// Output:
	// cardinality 1: (0) (2) (4)
	// cardinality 2: (0 2) (0 4) (2 4)
	// cardinality 3: (0 2 4)
}

// ExampleJoin demonstrates pooling the faces of two complexes that share a
// diagonal edge, as neighboring cube placements do on a grid.
func ExampleJoin() {
	a, _ := simplex.New(0, 1, 3)
	b, _ := simplex.New(0, 2, 3)
	j := simplex.Join(simplex.NewComplex(a), simplex.NewComplex(b))

	fmt.Println("vertices:", j.Size(1))
	fmt.Println("edges:   ", j.Size(2))
	fmt.Println("triangles:", j.Size(3))

	// Output:
	// vertices: 4
	// edges:    5
	// triangles: 2
}
