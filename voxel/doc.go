// Package voxel models binary 3D voxel volumes as flat per-slice byte
// buffers, decoupled from the bit depth of whatever image produced them.
//
// What:
//
//   - Volume wraps a width×height×depth grid of binary marks (Fore/Back),
//     stored as one flattened []byte per Z-slice.
//   - LabelVolume is the parallel int32 grid that labelling writes into;
//     0 always means "not the requested phase".
//   - Phase selects which of the two marks a labelling pass targets.
//   - SliceSource is the collaborator surface for building a Volume from
//     raw per-slice intensities (any value > 0 becomes Fore).
//
// Why:
//
//   - Particle analysis: the work array consumed by particles.Label.
//   - Porosity / pore-network studies: label the Background phase instead.
//   - Keeps labelling independent of image I/O, calibration and rendering.
//
// Complexity:
//
//   - All accessors are O(1); constructors are O(W×H×D) time and memory
//     (inputs are deep-copied so a Volume is immutable once built).
//
// Errors:
//
//   - ErrEmptyVolume: a dimension is zero or negative.
//   - ErrNonRectangular: slices disagree about their dimensions.
//   - ErrBadMark: a voxel value is neither Fore nor Back.
//   - ErrNilSource: FromSlices received a nil SliceSource.
package voxel
