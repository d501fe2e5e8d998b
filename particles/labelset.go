package particles

import "sort"

// labelSet is a sorted, duplicate-free set of provisional labels. One set
// per collision-map bucket; the whole arena of sets is owned exclusively
// by its chunk's task, so no locking is ever needed.
//
// Keeping the slice sorted makes min lookups O(1), membership and
// insertion O(log n)+O(n), and iteration deterministic — the reduction's
// "always fold toward the numerically smallest label" rule depends on
// that determinism.
type labelSet []int

// has reports membership via binary search. Complexity: O(log n).
func (s labelSet) has(v int) bool {
	i := sort.SearchInts(s, v)

	return i < len(s) && s[i] == v
}

// add inserts v keeping the slice sorted; duplicates are dropped.
// Complexity: O(n) worst case, O(log n) when already present.
func (s *labelSet) add(v int) {
	t := *s
	i := sort.SearchInts(t, v)
	if i < len(t) && t[i] == v {
		return
	}
	t = append(t, 0)
	copy(t[i+1:], t[i:])
	t[i] = v
	*s = t
}

// union merges every member of other into s. Complexity: O(n+m).
func (s *labelSet) union(other labelSet) {
	if len(other) == 0 {
		return
	}
	a, b := *s, other
	merged := make(labelSet, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			merged = append(merged, a[i])
			i++
		case a[i] > b[j]:
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i])
			i++
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	*s = merged
}

// min returns the smallest member. The caller must ensure s is non-empty.
// Complexity: O(1).
func (s labelSet) min() int {
	return s[0]
}
