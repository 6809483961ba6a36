package mapper

import (
	"runtime"

	"github.com/katalvlaran/lvtda/metrics"
	"go.uber.org/zap"
)

// Option configures Build.
type Option func(*options)

type options struct {
	lens     Lens
	epsilon  EpsilonStrategy
	workers  int
	logger   *zap.Logger
	recorder metrics.Recorder
}

func gatherOptions(opts []Option) options {
	o := options{
		lens:     Coordinate(0),
		epsilon:  MedianNeighbor(DefaultNeighborFactor),
		workers:  runtime.GOMAXPROCS(0),
		logger:   zap.NewNop(),
		recorder: metrics.Nop,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLens replaces the default Coordinate(0) lens.
func WithLens(l Lens) Option {
	return func(o *options) {
		if l != nil {
			o.lens = l
		}
	}
}

// WithEpsilon replaces the default MedianNeighbor(1.5) strategy.
func WithEpsilon(s EpsilonStrategy) Option {
	return func(o *options) {
		if s != nil {
			o.epsilon = s
		}
	}
}

// WithWorkers bounds concurrent interval clustering and distance rows.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("mapper: WithWorkers: workers must be >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithLogger logs per-interval clustering at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithRecorder reports node and edge counts to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = metrics.OrNop(r) }
}
