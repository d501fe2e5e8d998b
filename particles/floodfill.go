package particles

import "github.com/bonej-org/BoneJ2-sub002/voxel"

// FloodFill labels the requested phase with a single-threaded BFS flood
// fill over the full adjacency (26-connected foreground, 6-connected
// background). It honors exactly the same output contract as Label —
// dense IDs 1..N in raster order of each particle's first voxel, 0
// elsewhere — and the two agree voxel for voxel on any volume, which is
// what the property tests lean on.
//
// Prefer Label for anything big; FloodFill has no chunking and no
// parallelism but also none of their bookkeeping, which makes it the
// simpler choice for small volumes and the reference for correctness.
//
// Cancellation via WithContext is observed once per slice.
// Complexity: O(W×H×D×d) time with d = 26 or 6, O(W×H×D) memory.
func FloodFill(vol *voxel.Volume, phase voxel.Phase, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if vol == nil {
		return nil, ErrNilVolume
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	mark := phase.Mark()
	w, h, d := vol.Width, vol.Height, vol.Depth
	labels := voxel.NewLabelVolume(w, h, d)
	offsets := neighborOffsets(phase)

	next := int32(0)
	var queue []int
	for z := 0; z < d; z++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		src := vol.Slices[z]
		for y := 0; y < h; y++ {
			row := y * w
			for x := 0; x < w; x++ {
				if src[row+x] != mark || labels.Slices[z][row+x] != 0 {
					continue
				}
				// Unlabelled voxel of the phase: seed a new particle and
				// flood it breadth-first.
				next++
				labels.Slices[z][row+x] = next
				queue = append(queue[:0], (z*h+y)*w+x)
				for qi := 0; qi < len(queue); qi++ {
					u := queue[qi]
					ux := u % w
					uy := (u / w) % h
					uz := u / (w * h)
					for _, off := range offsets {
						vx, vy, vz := ux+off[0], uy+off[1], uz+off[2]
						if !vol.InBounds(vx, vy, vz) {
							continue
						}
						vi := vy*w + vx
						if vol.Slices[vz][vi] != mark || labels.Slices[vz][vi] != 0 {
							continue
						}
						labels.Slices[vz][vi] = next
						queue = append(queue, (vz*h+vy)*w+vx)
					}
				}
			}
		}
	}

	return &Result{Labels: labels, N: int(next)}, nil
}

// neighborOffsets returns the full (undirected) adjacency of a phase:
// all 26 offsets for Foreground, the 6 orthogonal ones for Background.
func neighborOffsets(phase voxel.Phase) [][3]int {
	if phase == voxel.Background {
		return [][3]int{
			{-1, 0, 0}, {1, 0, 0},
			{0, -1, 0}, {0, 1, 0},
			{0, 0, -1}, {0, 0, 1},
		}
	}
	offs := make([][3]int, 0, 26)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offs = append(offs, [3]int{dx, dy, dz})
			}
		}
	}

	return offs
}
