package particles

// chunk is a contiguous, non-overlapping range of Z-slices processed as
// one unit of parallelism, together with the disjoint provisional label
// sub-range it owns. Two chunks can therefore never issue the same label.
type chunk struct {
	index int

	// Z-slice range [start, end).
	start, end int

	// Provisional label sub-range [offset, limit).
	offset, limit int
}

// slices returns the chunk's Z-extent.
func (c chunk) slices() int {
	return c.end - c.start
}

// planChunks partitions depth Z-slices into at most parallelism chunks of
// at least minSlices slices each, distributing slices roughly evenly with
// the last chunk absorbing any remainder, and assigns each chunk a
// disjoint label sub-range of size maxLabel/nChunks.
//
// Thin volumes degenerate gracefully to a single chunk; there are no
// error conditions.
// Complexity: O(nChunks).
func planChunks(depth, parallelism, minSlices, maxLabel int) []chunk {
	nChunks := 1
	if depth >= 2*minSlices {
		nChunks = depth / minSlices
		if nChunks > parallelism {
			nChunks = parallelism
		}
	}

	// nChunks never exceeds depth/minSlices, so per >= minSlices and the
	// last chunk, absorbing the remainder, is the largest of all.
	per := depth / nChunks
	span := maxLabel / nChunks
	chunks := make([]chunk, 0, nChunks)
	for i := 0; i < nChunks; i++ {
		start := i * per
		end := start + per
		if i == nChunks-1 {
			end = depth
		}
		chunks = append(chunks, chunk{
			index:  i,
			start:  start,
			end:    end,
			offset: i * span,
			limit:  i*span + span,
		})
	}

	return chunks
}
