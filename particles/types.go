package particles

import (
	"context"
	"errors"
	"math"
	"runtime"

	"github.com/bonej-org/BoneJ2-sub002/voxel"
)

var (
	// ErrNilVolume is returned when a nil *voxel.Volume is passed to
	// Label or FloodFill.
	ErrNilVolume = errors.New("particles: volume is nil")

	// ErrLabelSpaceExhausted indicates a chunk's provisional label counter
	// reached the ceiling of its allotted sub-range. The static partition
	// of the label space was too small for the volume's component count;
	// the whole call aborts and nothing is returned.
	ErrLabelSpaceExhausted = errors.New("particles: chunk label sub-range exhausted")

	// ErrBadParallelism indicates a Parallelism option below 1.
	ErrBadParallelism = errors.New("particles: parallelism must be at least 1")

	// ErrBadChunkSize indicates a MinSlicesPerChunk option below 1.
	ErrBadChunkSize = errors.New("particles: min slices per chunk must be at least 1")

	// ErrBadMaxLabel indicates a MaxLabel option too small to give every
	// chunk a usable label sub-range.
	ErrBadMaxLabel = errors.New("particles: max label too small for requested chunking")
)

const (
	// DefaultMinSlicesPerChunk bounds oversubdivision of thin volumes:
	// a chunk is never planned with fewer Z-slices than this.
	DefaultMinSlicesPerChunk = 8

	// DefaultMaxLabel is the default size of the provisional label space
	// partitioned across chunks. Labels fit an int32 label volume, so the
	// full positive int32 range is available.
	DefaultMaxLabel = math.MaxInt32
)

// Option configures optional behavior of a labelling call.
// Use with Label(vol, phase, opts...).
type Option func(*Options)

// Options holds configurable parameters for a labelling call.
// The defaults label with one chunk task per CPU and the full int32
// provisional label space.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancellation is observed at phase boundaries, never mid-chunk.
	Ctx context.Context

	// Parallelism bounds the worker pool and the chunk count.
	// Defaults to runtime.NumCPU().
	Parallelism int

	// MinSlicesPerChunk is the smallest Z-extent a chunk may have.
	// Lowering it forces more chunks onto thin volumes, which the tests
	// use to exercise boundary stitching. Default DefaultMinSlicesPerChunk.
	MinSlicesPerChunk int

	// MaxLabel is the size of the provisional label space; each chunk owns
	// the disjoint sub-range [i*MaxLabel/nChunks, (i+1)*MaxLabel/nChunks).
	// Default DefaultMaxLabel.
	MaxLabel int

	// OnProgress, if non-nil, is invoked from the orchestrating goroutine
	// as pipeline stages complete. Purely advisory; labelling never
	// depends on it.
	OnProgress func(stage string, done, total int)
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - Parallelism = runtime.NumCPU()
//   - MinSlicesPerChunk = DefaultMinSlicesPerChunk
//   - MaxLabel = DefaultMaxLabel
//   - No progress hook
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		Parallelism:       runtime.NumCPU(),
		MinSlicesPerChunk: DefaultMinSlicesPerChunk,
		MaxLabel:          DefaultMaxLabel,
		OnProgress:        nil,
	}
}

// WithContext returns an Option that sets the Context for the call.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallelism returns an Option bounding the worker pool size and
// chunk count.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithMinSlicesPerChunk returns an Option that sets the smallest Z-extent
// a chunk may have.
func WithMinSlicesPerChunk(n int) Option {
	return func(o *Options) {
		o.MinSlicesPerChunk = n
	}
}

// WithMaxLabel returns an Option that sets the provisional label space
// partitioned across chunks.
func WithMaxLabel(n int) Option {
	return func(o *Options) {
		o.MaxLabel = n
	}
}

// WithProgress returns an Option that installs fn as the advisory
// stage-completion hook.
func WithProgress(fn func(stage string, done, total int)) Option {
	return func(o *Options) {
		o.OnProgress = fn
	}
}

// validate rejects option combinations the planner cannot honor.
func (o *Options) validate() error {
	if o.Parallelism < 1 {
		return ErrBadParallelism
	}
	if o.MinSlicesPerChunk < 1 {
		return ErrBadChunkSize
	}
	if o.MaxLabel < 2 || o.MaxLabel/o.Parallelism < 2 {
		return ErrBadMaxLabel
	}

	return nil
}

// report invokes the progress hook when one is installed.
func (o *Options) report(stage string, done, total int) {
	if o.OnProgress != nil {
		o.OnProgress(stage, done, total)
	}
}

// Result is the outcome of a labelling call: the label volume and the
// particle count. Nonzero labels are exactly {1..N}.
type Result struct {
	// Labels holds one particle ID per voxel; 0 = not the requested phase.
	Labels *voxel.LabelVolume

	// N is the number of particles found.
	N int
}
