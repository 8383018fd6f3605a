// Package decompose enumerates every simplex of a grid triangulation
// exactly once and folds the counts into the Euler characteristic.
//
// What:
//
//   - Decompose3D / Decompose2D / Decompose1D return a lazy Stream of all
//     simplices of a requested cardinality in the triangulation of a
//     rectangular grid, each produced exactly once, in O(volume) total work.
//   - EulerCharacteristic3D / 2D / 1D fold the per-cardinality counts with
//     alternating sign; a solid grid always yields 1, which doubles as the
//     correctness oracle for the whole decomposition.
//   - EulerCharacteristicMask3D / 2D restrict the count to simplices whose
//     vertices all lie inside a binary mask, giving the Euler
//     characteristic of the masked region.
//
// Why:
//
//   - Topological invariants of binary masks and activation regions.
//   - Feeding duplicate-free simplex streams into adjacency graphs or
//     further geometric processing.
//
// How exactly-once works:
//
//	A naive cube-per-voxel sweep counts every shared face once per
//	adjacent voxel. Instead, each stratum (3D interior, 2D boundary
//	slabs, 1D boundary edges) precomputes a unique-face template: the
//	faces of the origin cube minus everything already claimed by its
//	lexicographically earlier neighbors. Translating that fixed template
//	across the stratum assigns every face to exactly one position.
//
// Complexity:
//
//   - Template construction: O(1) per stratum (fixed cube templates).
//   - Streaming: O(#simplices) pulls, O(1) memory beyond the templates;
//     the grid itself is never materialized.
//
// Options: none — the templates and neighbor-offset sets are fixed by the
// triangulation; there is nothing to tune.
//
// Errors:
//
//   - ErrShapeMismatch: shape axis count does not match the variant called.
//   - ErrAxisLength: an axis length < 1 (length-1 axes are fine and simply
//     contribute no positions).
//   - ErrCardRange: requested cardinality outside 1..max for the variant.
//   - ErrMaskLength: mask length differs from the grid volume.
package decompose
