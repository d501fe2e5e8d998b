package particles

import (
	"sort"

	"github.com/bonej-org/BoneJ2-sub002/voxel"
)

// buildLUTs converts the reduced collision structure into dense
// consecutive particle IDs and materializes one flat relabelling table
// per chunk, indexed by (provisional label − chunk offset).
//
// Every nonempty bucket is one merge group. Cross-chunk pours can leave
// a label sitting in more than one group (a bucket poured two chunks
// down drags shared members past a sibling bucket that never crossed),
// so group minima are propagated transitively, with the same fixed-point
// discipline as the fountain, until no label's assigned root changes.
// The distinct roots, in ascending order, become particle IDs 1..N; the
// smallest label of a component is always its root, so IDs follow the
// raster order of each particle's first voxel.
//
// span is the uniform size of each chunk's label sub-range; a label's
// owning chunk is therefore label/span.
// Complexity: near-linear in the number of recorded labels.
func buildLUTs(states []*chunkState, span int) ([][]int32, int) {
	var groups []labelSet
	rep := make(map[int]int)
	for _, st := range states {
		for _, s := range st.buckets {
			if len(s) == 0 {
				continue
			}
			groups = append(groups, s)
			for _, m := range s {
				rep[m] = m
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for _, g := range groups {
			m := rep[g.min()]
			for _, l := range g {
				if r := rep[l]; r < m {
					m = r
				}
			}
			for _, l := range g {
				if rep[l] != m {
					rep[l] = m
					changed = true
				}
			}
		}
	}

	roots := make([]int, 0, len(groups))
	seen := make(map[int]bool, len(groups))
	for _, g := range groups {
		if r := rep[g.min()]; !seen[r] {
			seen[r] = true
			roots = append(roots, r)
		}
	}
	sort.Ints(roots)
	id := make(map[int]int32, len(roots))
	for i, r := range roots {
		id[r] = int32(i + 1)
	}

	luts := make([][]int32, len(states))
	for c, st := range states {
		luts[c] = make([]int32, len(st.buckets))
	}
	for l, r := range rep {
		c := l / span
		luts[c][l-states[c].offset] = id[r]
	}

	return luts, len(roots)
}

// applyLUT rewrites the chunk's slice range in place through its dense
// LUT. Zero voxels are not this phase and stay zero. One task per chunk
// runs in parallel; slice ranges are disjoint by construction.
// Complexity: O(W×H×slices).
func (st *chunkState) applyLUT(labels *voxel.LabelVolume, lut []int32) {
	for z := st.start; z < st.end; z++ {
		s := labels.Slices[z]
		for i, v := range s {
			if v != 0 {
				s[i] = lut[int(v)-st.offset]
			}
		}
	}
}
