package voxel

// Volume is a binary voxel work array: one flattened []byte of length
// Width*Height per Z-slice, each element either Fore or Back.
// It is immutable once built; constructors deep-copy their input.
type Volume struct {
	Width, Height, Depth int
	Slices               [][]byte
}

// New returns an all-Back volume of the given dimensions.
// Complexity: O(W×H×D) time and memory.
func New(width, height, depth int) (*Volume, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, ErrEmptyVolume
	}
	slices := make([][]byte, depth)
	for z := 0; z < depth; z++ {
		slices[z] = make([]byte, width*height)
	}

	return &Volume{Width: width, Height: height, Depth: depth, Slices: slices}, nil
}

// FromSlices builds a binary work array from raw per-slice intensities:
// any source value > 0 becomes Fore, zero becomes Back.
// Returns ErrNilSource for a nil source, ErrEmptyVolume for degenerate
// dimensions, ErrNonRectangular if a slice has the wrong length.
// Complexity: O(W×H×D).
func FromSlices(src SliceSource) (*Volume, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	w, h, d := src.Dimensions()
	vol, err := New(w, h, d)
	if err != nil {
		return nil, err
	}
	for z := 0; z < d; z++ {
		raw := src.Slice(z)
		if len(raw) != w*h {
			return nil, ErrNonRectangular
		}
		dst := vol.Slices[z]
		for i, v := range raw {
			if v > 0 {
				dst[i] = Fore
			}
		}
	}

	return vol, nil
}

// FromGrid deep-copies a [z][y][x] grid of mark bytes into a Volume.
// Every value must be exactly Fore or Back (ErrBadMark otherwise);
// ragged input yields ErrNonRectangular.
// Complexity: O(W×H×D).
func FromGrid(grid [][][]byte) (*Volume, error) {
	if len(grid) == 0 || len(grid[0]) == 0 || len(grid[0][0]) == 0 {
		return nil, ErrEmptyVolume
	}
	d, h, w := len(grid), len(grid[0]), len(grid[0][0])
	vol, err := New(w, h, d)
	if err != nil {
		return nil, err
	}
	for z := 0; z < d; z++ {
		if len(grid[z]) != h {
			return nil, ErrNonRectangular
		}
		for y := 0; y < h; y++ {
			row := grid[z][y]
			if len(row) != w {
				return nil, ErrNonRectangular
			}
			for x, v := range row {
				if v != Fore && v != Back {
					return nil, ErrBadMark
				}
				vol.Slices[z][y*w+x] = v
			}
		}
	}

	return vol, nil
}

// Index maps (x,y) to a row-major in-slice index: y*Width + x.
// Complexity: O(1).
func (v *Volume) Index(x, y int) int {
	return y*v.Width + x
}

// Coordinate converts a row-major in-slice index back to (x,y).
// Complexity: O(1).
func (v *Volume) Coordinate(idx int) (x, y int) {
	return idx % v.Width, idx / v.Width
}

// InBounds reports whether (x,y,z) lies within the volume.
// Complexity: O(1).
func (v *Volume) InBounds(x, y, z int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height && z >= 0 && z < v.Depth
}

// At returns the mark at (x,y,z). The caller must ensure bounds.
// Complexity: O(1).
func (v *Volume) At(x, y, z int) byte {
	return v.Slices[z][y*v.Width+x]
}

// LabelVolume is the int32 label grid parallel in shape to a Volume.
// 0 always denotes "not the requested phase"; particles of the phase
// carry consecutive IDs 1..N once labelling has finished.
type LabelVolume struct {
	Width, Height, Depth int
	Slices               [][]int32
}

// NewLabelVolume returns an all-zero label volume of the given dimensions.
// Complexity: O(W×H×D) time and memory.
func NewLabelVolume(width, height, depth int) *LabelVolume {
	slices := make([][]int32, depth)
	for z := 0; z < depth; z++ {
		slices[z] = make([]int32, width*height)
	}

	return &LabelVolume{Width: width, Height: height, Depth: depth, Slices: slices}
}

// At returns the label at (x,y,z). The caller must ensure bounds.
// Complexity: O(1).
func (l *LabelVolume) At(x, y, z int) int32 {
	return l.Slices[z][y*l.Width+x]
}

// Set stores a label at (x,y,z). The caller must ensure bounds.
// Complexity: O(1).
func (l *LabelVolume) Set(x, y, z int, label int32) {
	l.Slices[z][y*l.Width+x] = label
}
