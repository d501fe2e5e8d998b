package particles

import (
	"golang.org/x/sync/errgroup"

	"github.com/bonej-org/BoneJ2-sub002/voxel"
)

// Pipeline stage names passed to the OnProgress hook.
const (
	StageFirstPass = "first-pass"
	StageStitch    = "stitch"
	StageReduce    = "reduce"
	StageRelabel   = "relabel"
)

const pipelineStages = 4

// Label assigns every voxel of the requested phase a particle ID such
// that connected voxels (26-connected foreground, 6-connected background)
// share an ID and separate components get distinct IDs. IDs are dense
// consecutive integers 1..N in raster order of each particle's first
// voxel; all other voxels are 0. N is returned alongside the volume.
//
// The volume is read-only input; the call is a pure function with no
// cross-call state, and for a fixed chunk count its output is
// bit-identical across runs. Cancellation via WithContext is observed at
// phase boundaries. The only runtime failure is ErrLabelSpaceExhausted,
// which aborts the call with no partial result.
//
// Complexity: O(W×H×D) scan work split across min(Parallelism,
// depth/MinSlicesPerChunk) chunk tasks, plus reduction linear in the
// number of recorded label collisions.
func Label(vol *voxel.Volume, phase voxel.Phase, opts ...Option) (*Result, error) {
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

	chunks := planChunks(vol.Depth, o.Parallelism, o.MinSlicesPerChunk, o.MaxLabel)
	states := make([]*chunkState, len(chunks))
	for i, c := range chunks {
		states[i] = newChunkState(c)
	}
	labels := voxel.NewLabelVolume(vol.Width, vol.Height, vol.Depth)

	// First pass: provisional labels and chunk-local collision maps, one
	// task per chunk. Chunk label sub-ranges are disjoint, so tasks share
	// no mutable state.
	g := new(errgroup.Group)
	g.SetLimit(o.Parallelism)
	for _, st := range states {
		st := st
		g.Go(func() error { return st.scan(vol, labels, phase) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o.report(StageFirstPass, 1, pipelineStages)
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	// Stitch: one task per chunk boundary. The label volume is fully
	// written and read-shared from here until LUT application.
	if len(states) > 1 {
		g = new(errgroup.Group)
		g.SetLimit(o.Parallelism)
		for _, st := range states[1:] {
			st := st
			g.Go(func() error { st.stitch(vol, labels, phase); return nil })
		}
		_ = g.Wait()
	}
	o.report(StageStitch, 2, pipelineStages)
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	// Reduce: fold every chunk to its local fixed point in parallel, then
	// pour collisions down across chunk boundaries sequentially.
	g = new(errgroup.Group)
	g.SetLimit(o.Parallelism)
	for _, st := range states {
		st := st
		g.Go(func() error { st.minimize(); return nil })
	}
	_ = g.Wait()
	crossMerge(states)
	o.report(StageReduce, 3, pipelineStages)
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	// Relabel: dense consecutive particle IDs, one task per chunk.
	luts, n := buildLUTs(states, chunks[0].limit-chunks[0].offset)
	g = new(errgroup.Group)
	g.SetLimit(o.Parallelism)
	for i, st := range states {
		st := st
		lut := luts[i]
		g.Go(func() error { st.applyLUT(labels, lut); return nil })
	}
	_ = g.Wait()
	o.report(StageRelabel, pipelineStages, pipelineStages)

	return &Result{Labels: labels, N: n}, nil
}
