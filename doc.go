// Package bonej is the umbrella for the connected-component labelling
// kernel that particle analysis of binary 3D image stacks is built on.
//
// 🚀 What is in here?
//
//	Two packages working as a pair:
//		• voxel/     — binary volume work arrays, label volumes, phase
//		  selection, and the SliceSource bridge from raw image slices
//		• particles/ — the labelling kernel: a chunked, parallel two-pass
//		  labeller with a bucket-fountain collision reducer, plus a BFS
//		  flood-fill reference with the identical output contract
//
// ✨ Why this shape?
//
//   - Downstream morphometry (sizing, meshing, Euler characteristic,
//     thickness, ellipsoid fitting) consumes the label volume as a black
//     box — labelling is the one piece that must scale
//   - Chunked label sub-ranges let every worker run lock-free; collisions
//     are reconciled afterwards instead of synchronized during the scan
//   - Deterministic by construction: particles are numbered 1..N in
//     raster order of their first voxel, bit-identical across runs
//
// Quick example:
//
//	vol, _ := voxel.FromGrid(grid) // or voxel.FromSlices(source)
//	res, err := particles.Label(vol, voxel.Foreground)
//	if err != nil {
//		// only degenerate label-space sizing can fail
//	}
//	fmt.Println(res.N, "particles")
//
// See voxel/doc.go and particles/doc.go for the full contracts.
package bonej
