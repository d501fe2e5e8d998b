// File: particles/firstpass_test.go
package particles

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bonej-org/BoneJ2-sub002/voxel"
)

const (
	o = voxel.Back
	x = voxel.Fore
)

// scanOne runs a first-pass scan of the whole volume as a single chunk
// and returns the chunk state plus the provisional label volume.
func scanOne(t *testing.T, grid [][][]byte, phase voxel.Phase) (*chunkState, *voxel.LabelVolume) {
	t.Helper()
	vol, err := voxel.FromGrid(grid)
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}
	st := newChunkState(chunk{index: 0, start: 0, end: vol.Depth, offset: 0, limit: 1 << 20})
	labels := voxel.NewLabelVolume(vol.Width, vol.Height, vol.Depth)
	if err := st.scan(vol, labels, phase); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	return st, labels
}

// TestScan_FirstSliceCollision verifies provisional labels and collision
// capture within a chunk's first slice, where only the four in-slice
// backward neighbors are visible: two separate runs meet one row later.
func TestScan_FirstSliceCollision(t *testing.T) {
	st, labels := scanOne(t, [][][]byte{
		{
			{x, o, x},
			{x, x, x},
		},
	}, voxel.Foreground)

	want := []int32{1, 0, 2, 1, 1, 1}
	if !reflect.DeepEqual(labels.Slices[0], want) {
		t.Fatalf("provisional labels = %v; want %v", labels.Slices[0], want)
	}
	if st.next != 3 {
		t.Errorf("next label = %d; want 3", st.next)
	}
	// The meeting voxel took label 1 and recorded 2 against it.
	if !st.buckets[1].has(2) {
		t.Errorf("bucket 1 = %v; want it to contain the colliding label 2", st.buckets[1])
	}
}

// TestScan_SlidingWindowCollision forces the sliding fast path (previous
// raster voxel foreground, 13-neighborhood slice) to fetch the one new
// below-column label that joins two components.
func TestScan_SlidingWindowCollision(t *testing.T) {
	st, labels := scanOne(t, [][][]byte{
		{
			{x, o, x},
		},
		{
			{x, x, x},
		},
	}, voxel.Foreground)

	if got := labels.Slices[0]; !reflect.DeepEqual(got, []int32{1, 0, 2}) {
		t.Fatalf("slice 0 labels = %v; want [1 0 2]", got)
	}
	// All of slice 1 folds onto label 1; the middle voxel was labelled on
	// the sliding path and must still have seen label 2 entering the
	// window from below.
	if got := labels.Slices[1]; !reflect.DeepEqual(got, []int32{1, 1, 1}) {
		t.Fatalf("slice 1 labels = %v; want [1 1 1]", got)
	}
	if !st.buckets[1].has(2) {
		t.Errorf("bucket 1 = %v; want the sliding window to record label 2", st.buckets[1])
	}
}

// TestScan_BackgroundNeighborhood checks the 6-connected backward scan:
// diagonal background voxels must not merge in the first pass.
func TestScan_BackgroundNeighborhood(t *testing.T) {
	st, labels := scanOne(t, [][][]byte{
		{
			{o, x},
			{x, o},
		},
	}, voxel.Background)

	want := []int32{1, 0, 0, 2}
	if !reflect.DeepEqual(labels.Slices[0], want) {
		t.Fatalf("provisional labels = %v; want %v", labels.Slices[0], want)
	}
	if st.buckets[1].has(2) || st.buckets[2].has(1) {
		t.Error("diagonal background voxels must not collide under 6-connectivity")
	}
}

// TestScan_LabelSpaceExhausted drives a chunk into its label ceiling.
func TestScan_LabelSpaceExhausted(t *testing.T) {
	vol, err := voxel.FromGrid([][][]byte{{{x, o, x}}})
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}
	st := newChunkState(chunk{index: 0, start: 0, end: 1, offset: 0, limit: 2})
	labels := voxel.NewLabelVolume(3, 1, 1)
	if err := st.scan(vol, labels, voxel.Foreground); !errors.Is(err, ErrLabelSpaceExhausted) {
		t.Fatalf("scan returned %v; want ErrLabelSpaceExhausted", err)
	}
}
