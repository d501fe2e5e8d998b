package particles

import "github.com/bonej-org/BoneJ2-sub002/voxel"

// stitch discovers the inter-chunk adjacency the first pass cannot see:
// it re-scans only the chunk's first slice, this time reading the
// previous chunk's last slice through the label volume, and records the
// previous chunk's labels as collisions against each voxel's own label.
// The neighborhood is the full 3×3 window below for foreground and the
// single voxel below for background.
//
// Only chunks after the first have a boundary; one task per boundary runs
// in parallel. Reads are safe because the label volume is fully written
// by the first pass and not mutated again until LUT application.
func (st *chunkState) stitch(vol *voxel.Volume, labels *voxel.LabelVolume, phase voxel.Phase) {
	z := st.start
	mark := phase.Mark()
	w, h := vol.Width, vol.Height
	src := vol.Slices[z]
	cur := labels.Slices[z]
	below := labels.Slices[z-1]
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			if src[row+x] != mark {
				continue
			}
			b := &st.buckets[int(cur[row+x])-st.offset]
			if phase == voxel.Background {
				if l := int(below[row+x]); l != 0 {
					b.add(l)
				}
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				yy := y + dy
				if yy < 0 || yy >= h {
					continue
				}
				base := yy * w
				for dx := -1; dx <= 1; dx++ {
					xx := x + dx
					if xx < 0 || xx >= w {
						continue
					}
					if l := int(below[base+xx]); l != 0 {
						b.add(l)
					}
				}
			}
		}
	}
}
