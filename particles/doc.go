// Package particles implements two-pass connected-component labelling of
// binary 3D voxel volumes: every voxel of the requested phase receives a
// particle ID such that connected voxels share an ID, separate components
// get distinct IDs, and IDs are dense consecutive integers starting at 1
// (0 is reserved for "not this phase").
//
// What:
//
//   - Label: the chunked two-pass labeller. The Z-depth is partitioned
//     into contiguous chunks, each with a disjoint provisional label
//     sub-range, labelled independently in a backward-neighborhood raster
//     scan, stitched across chunk boundaries, reduced to canonical
//     minimal representatives by the bucket-fountain fold, and finally
//     rewritten through a dense LUT.
//   - FloodFill: a single-threaded BFS labeller over the same adjacency,
//     with the identical output contract. Simpler, slower on large
//     volumes, and the independent reference the tests compare against.
//
// Adjacency: Foreground particles are 26-connected, Background particles
// 6-connected (the complement convention). The raster scan runs in
// increasing x, then y, then z; the backward neighborhood shapes are tied
// to that order and must not be changed independently of it.
//
// Why:
//
//   - Particle sizing, surface meshing, Euler characteristic, thickness
//     and ellipsoid fitting all consume the label volume as a black box;
//     labelling is the kernel they share.
//   - Scales near-linearly to hundreds of millions of voxels and
//     parallelizes across chunks without a global union-find.
//
// Complexity:
//
//   - Label:     O(W×H×D × d / P) scan with d = 13 or 3 backward
//     neighbors and P parallel chunk tasks, plus reduction linear in the
//     number of recorded collisions. Memory: O(W×H×D) for the label
//     volume plus per-chunk collision arenas.
//   - FloodFill: O(W×H×D × d), single-threaded, d = 26 or 6.
//
// Determinism: for a fixed chunk count the output is bit-identical across
// runs; representatives are always the numerically smallest label of a
// component, and components are numbered in raster order of their first
// voxel. Label and FloodFill therefore agree exactly, not just up to
// renumbering.
//
// Errors:
//
//   - ErrNilVolume: Label or FloodFill received a nil volume.
//   - ErrLabelSpaceExhausted: a chunk issued more provisional labels than
//     its static sub-range allows (fatal; the call aborts with no result).
//   - ErrBadParallelism, ErrBadChunkSize, ErrBadMaxLabel: option
//     validation failures.
package particles
