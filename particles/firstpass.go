package particles

import (
	"fmt"

	"github.com/bonej-org/BoneJ2-sub002/voxel"
)

// chunkState is everything a single chunk's task owns for the duration of
// the pipeline: its slice range, label sub-range, collision-map arena and
// per-chunk LUT. Nothing here is ever shared between concurrent tasks.
type chunkState struct {
	chunk

	// buckets is the collision map: bucket i holds, as a minimum, its own
	// label offset+i, plus every other label observed as a backward
	// neighbor of a voxel labelled offset+i.
	buckets []labelSet

	// lut tracks, per same-chunk label, the lowest bucket index the label
	// has ever been folded into. Built lazily by minimize.
	lut []int

	// next is the next fresh provisional label to issue.
	next int
}

func newChunkState(c chunk) *chunkState {
	st := &chunkState{chunk: c, next: c.offset}
	if st.next == 0 {
		// Label 0 always means "not this phase"; the first chunk starts
		// issuing at 1 and keeps an empty slot for the unused label 0.
		st.next = 1
	}

	return st
}

// grow issues the fresh label st.next, appending its singleton bucket.
// The counter reaching the chunk's limit means the static label-space
// partition was undersized for the volume's content; that is fatal and
// aborts the whole labelling call.
func (st *chunkState) grow() error {
	if st.next >= st.limit {
		return fmt.Errorf("%w: chunk %d at label %d", ErrLabelSpaceExhausted, st.index, st.next)
	}
	for len(st.buckets) < st.next-st.offset {
		st.buckets = append(st.buckets, nil)
	}
	st.buckets = append(st.buckets, labelSet{st.next})
	st.next++

	return nil
}

// assign labels the voxel at flat in-slice index idx from the backward
// neighborhood nb: the voxel takes the smallest nonzero neighbor label,
// or a fresh one when no neighbor is labelled yet; every other nonzero
// neighbor label is recorded as a collision against the assigned label.
// Collisions therefore always point from a smaller label to larger ones.
func (st *chunkState) assign(cur []int32, idx int, nb []int) error {
	minTag := st.next
	for _, l := range nb {
		if l != 0 && l < minTag {
			minTag = l
		}
	}
	cur[idx] = int32(minTag)
	if minTag == st.next {
		return st.grow()
	}
	b := &st.buckets[minTag-st.offset]
	for _, l := range nb {
		if l != 0 && l != minTag {
			b.add(l)
		}
	}

	return nil
}

// scan performs the chunk's first-pass raster scan: strictly increasing
// x, then y, then z, consulting only already-visited neighbors. The
// neighborhood shapes encode that causality and must not change without
// changing the scan order with them.
func (st *chunkState) scan(vol *voxel.Volume, labels *voxel.LabelVolume, phase voxel.Phase) error {
	if phase == voxel.Background {
		return st.scanBackground(vol, labels)
	}

	return st.scanForeground(vol, labels)
}

// scanForeground walks the chunk with the 26-connected backward
// neighborhood: 4 in-slice neighbors on the chunk's first slice (the
// slice below belongs to the previous chunk and is not yet safe to read),
// 13 neighbors (9 below + 4 in-slice) afterwards.
//
// When the previous voxel in raster order was also foreground its label
// already stands for the nine backward neighbors the two windows share,
// so the window slides: only the four labels entering it are fetched.
func (st *chunkState) scanForeground(vol *voxel.Volume, labels *voxel.LabelVolume) error {
	w, h := vol.Width, vol.Height
	var nb [13]int
	for z := st.start; z < st.end; z++ {
		src := vol.Slices[z]
		cur := labels.Slices[z]
		var below []int32
		if z > st.start {
			below = labels.Slices[z-1]
		}
		for y := 0; y < h; y++ {
			row := y * w
			prev := row - w
			slid := false
			for x := 0; x < w; x++ {
				if src[row+x] != voxel.Fore {
					slid = false
					continue
				}
				n := 0
				switch {
				case below == nil:
					// Chunk's first slice: in-slice backward neighbors only.
					if x > 0 {
						nb[n] = int(cur[row+x-1])
						n++
					}
					if y > 0 {
						if x > 0 {
							nb[n] = int(cur[prev+x-1])
							n++
						}
						nb[n] = int(cur[prev+x])
						n++
						if x+1 < w {
							nb[n] = int(cur[prev+x+1])
							n++
						}
					}
				case slid:
					// Sliding window: previous label plus the four new
					// positions on the window's leading edge.
					nb[0] = int(cur[row+x-1])
					n = 1
					if x+1 < w {
						if y > 0 {
							nb[n] = int(cur[prev+x+1])
							n++
							nb[n] = int(below[prev+x+1])
							n++
						}
						nb[n] = int(below[row+x+1])
						n++
						if y+1 < h {
							nb[n] = int(below[row+w+x+1])
							n++
						}
					}
				default:
					// Full backward neighborhood: nine below, four in-slice.
					for dy := -1; dy <= 1; dy++ {
						yy := y + dy
						if yy < 0 || yy >= h {
							continue
						}
						base := yy * w
						for dx := -1; dx <= 1; dx++ {
							xx := x + dx
							if xx >= 0 && xx < w {
								nb[n] = int(below[base+xx])
								n++
							}
						}
					}
					if x > 0 {
						nb[n] = int(cur[row+x-1])
						n++
					}
					if y > 0 {
						if x > 0 {
							nb[n] = int(cur[prev+x-1])
							n++
						}
						nb[n] = int(cur[prev+x])
						n++
						if x+1 < w {
							nb[n] = int(cur[prev+x+1])
							n++
						}
					}
				}
				if err := st.assign(cur, row+x, nb[:n]); err != nil {
					return err
				}
				slid = below != nil
			}
		}
	}

	return nil
}

// scanBackground walks the chunk with the 6-connected backward
// neighborhood: 2 in-slice neighbors on the chunk's first slice, 3
// (adding the voxel directly below) afterwards. Background connectivity
// is the complement of the foreground's, so no diagonals take part.
func (st *chunkState) scanBackground(vol *voxel.Volume, labels *voxel.LabelVolume) error {
	w, h := vol.Width, vol.Height
	var nb [3]int
	for z := st.start; z < st.end; z++ {
		src := vol.Slices[z]
		cur := labels.Slices[z]
		var below []int32
		if z > st.start {
			below = labels.Slices[z-1]
		}
		for y := 0; y < h; y++ {
			row := y * w
			for x := 0; x < w; x++ {
				if src[row+x] != voxel.Back {
					continue
				}
				n := 0
				if x > 0 {
					nb[n] = int(cur[row+x-1])
					n++
				}
				if y > 0 {
					nb[n] = int(cur[row-w+x])
					n++
				}
				if below != nil {
					nb[n] = int(below[row+x])
					n++
				}
				if err := st.assign(cur, row+x, nb[:n]); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
