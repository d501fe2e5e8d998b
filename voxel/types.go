package voxel

import "errors"

// Sentinel errors for volume construction.
var (
	// ErrEmptyVolume indicates a volume dimension is zero or negative.
	ErrEmptyVolume = errors.New("voxel: volume must have positive width, height and depth")
	// ErrNonRectangular indicates slices of differing dimensions.
	ErrNonRectangular = errors.New("voxel: all slices must share the same dimensions")
	// ErrBadMark indicates a voxel value other than Fore or Back.
	ErrBadMark = errors.New("voxel: voxel value is neither Fore nor Back")
	// ErrNilSource indicates FromSlices received a nil SliceSource.
	ErrNilSource = errors.New("voxel: slice source is nil")
)

// The two legal values of a binary work array. Every voxel of a Volume is
// exactly one of these, regardless of the bit depth of the source image.
const (
	// Back marks a background voxel.
	Back byte = 0x00
	// Fore marks a foreground voxel.
	Fore byte = 0xFF
)

// Phase selects which binary value a labelling pass targets.
type Phase int

const (
	// Foreground labels Fore voxels (26-connected adjacency).
	Foreground Phase = iota
	// Background labels Back voxels (6-connected adjacency).
	Background
)

// Mark returns the work-array byte value belonging to the phase.
func (p Phase) Mark() byte {
	if p == Background {
		return Back
	}

	return Fore
}

// String implements fmt.Stringer for diagnostics and progress hooks.
func (p Phase) String() string {
	if p == Background {
		return "background"
	}

	return "foreground"
}

// SliceSource yields raw per-slice pixel intensities of a source volume.
// It is the only collaborator surface this package consumes: thresholding
// beyond the trivial >0 test is assumed already performed by the caller.
//
// Slice(z) must return exactly width*height bytes in row-major order
// (index y*width + x) for every z in [0, depth).
type SliceSource interface {
	Dimensions() (width, height, depth int)
	Slice(z int) []byte
}
