package particles

// The bucket-fountain reduction collapses the per-chunk collision maps
// into a single globally consistent mapping "label → smallest label of
// its component" without ever materializing a global union-find. Buckets
// only ever fold toward numerically smaller labels, which is what makes
// the process convergent, cycle-free and deterministic.

// minimize folds the chunk's buckets to a local fixed point: every bucket
// migrates wholesale into the lowest bucket any of its same-chunk members
// has been folded into, and lut records that lowest bucket per label.
// When members of a bucket disagree with the recorded target, the bucket
// re-merges downward ("splash-back") and another sweep runs, until no
// label's tracked minimum changes. Labels belonging to other chunks ride
// along inside the sets and are ignored here.
//
// Runs once per chunk in parallel after stitching, and again sequentially
// during the cross-chunk pass.
func (st *chunkState) minimize() {
	if st.lut == nil {
		st.lut = make([]int, len(st.buckets))
		for i := range st.lut {
			st.lut[i] = i
		}
	}
	for changed := true; changed; {
		changed = false
		for i := len(st.buckets) - 1; i >= 0; i-- {
			s := st.buckets[i]
			if len(s) == 0 {
				continue
			}
			t := i
			for _, m := range s {
				if m < st.offset || m >= st.limit {
					continue
				}
				if j := st.lut[m-st.offset]; j < t {
					t = j
				}
			}
			if t < i {
				st.fold(i, t)
				changed = true
				continue
			}
			for _, m := range s {
				if m < st.offset || m >= st.limit {
					continue
				}
				if st.lut[m-st.offset] > i {
					st.lut[m-st.offset] = i
					changed = true
				}
			}
		}
	}
}

// fold moves bucket i wholesale into the lower bucket t and repoints the
// LUT of every same-chunk member that was tracking a higher bucket.
func (st *chunkState) fold(i, t int) {
	st.buckets[t].union(st.buckets[i])
	st.buckets[i] = nil
	for _, m := range st.buckets[t] {
		if m < st.offset || m >= st.limit {
			continue
		}
		if st.lut[m-st.offset] > t {
			st.lut[m-st.offset] = t
		}
	}
}

// crossMerge is the fountain's cross-chunk pass, run sequentially from
// the highest chunk to the lowest after all per-chunk folds have
// quiesced. Every bucket whose smallest member lies below the chunk's
// offset pours wholesale into the bucket owning that member in the
// immediate predecessor — chosen through the predecessor's already
// minimized LUT — and the chunk is then re-minimized locally.
//
// Each chunk only ever pours one step downward, and every chunk is
// visited after all chunks above it have poured, so a single downward
// sweep reaches the global fixed point; no repeated rounds are needed.
func crossMerge(states []*chunkState) {
	for c := len(states) - 1; c >= 0; c-- {
		st := states[c]
		if c > 0 {
			prev := states[c-1]
			for i := len(st.buckets) - 1; i >= 0; i-- {
				s := st.buckets[i]
				if len(s) == 0 || s.min() >= st.offset {
					continue
				}
				// Stitching only ever links adjacent chunks, so the
				// smallest member is always in the predecessor's range.
				j := prev.lut[s.min()-prev.offset]
				prev.buckets[j].union(s)
				st.buckets[i] = nil
			}
		}
		st.minimize()
	}
}
