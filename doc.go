// Package topogrid turns rectangular voxel grids into simplicial complexes
// and computes discrete topological invariants from them — chiefly the
// Euler characteristic.
//
// 🚀 What is topogrid?
//
//	A small, deterministic library that triangulates 1D/2D/3D lattices
//	into vertices, edges, triangles and tetrahedra so that every face of
//	the triangulation is enumerated exactly once across the whole grid:
//		• simplex/    — simplices, face complexes, union & difference
//		• cube/       — the fixed unit-hypercube triangulation templates
//		• decompose/  — exactly-once grid decomposition + Euler characteristic
//
// ✨ Why choose topogrid?
//
//   - Exactly-once guarantee – no duplicated and no missing faces, verified
//     by the Euler-characteristic oracle (χ = 1 for every solid grid)
//   - Lazy streams – pull one simplex at a time, whole grids are never
//     materialized in memory
//   - Pure Go – no cgo, no hidden deps, fully deterministic
//   - Sentinel errors only – no panics on user input, match with errors.Is
//
// Quick ASCII example (one voxel, six tetrahedra):
//
//	    6───────7
//	   /│      /│
//	  4───────5 │        Decompose3D([]int{2,2,2}, 4)
//	  │ 2─────│─3   →    yields the 6 tetrahedra of the
//	  │/      │/         Kuhn triangulation of the cube.
//	  0───────1
//
// Typical workflow: pick a shape, ask decompose for a stream of simplices
// per cardinality, fold the counts with alternating sign — or hand the
// stream to your own topology consumer (adjacency graphs, region
// statistics, persistence pipelines).
//
//	go get github.com/katalvlaran/topogrid
package topogrid
