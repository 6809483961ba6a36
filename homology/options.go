package homology

import (
	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/metrics"
	"github.com/katalvlaran/lvtda/rips"
	"go.uber.org/zap"
)

// Option configures Compute, Intervals and IntervalsMatrix.
type Option func(*options)

type options struct {
	representatives bool
	maxSimplices    int
	logger          *zap.Logger
	recorder        metrics.Recorder
	distOpts        []distance.Option
}

func gatherOptions(opts []Option) options {
	o := options{
		maxSimplices: rips.DefaultMaxSimplices,
		logger:       zap.NewNop(),
		recorder:     metrics.Nop,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ripsOptions translates the shared settings for the filtration builder.
func (o options) ripsOptions() []rips.Option {
	return []rips.Option{
		rips.WithMaxSimplices(o.maxSimplices),
		rips.WithLogger(o.logger),
		rips.WithRecorder(o.recorder),
		rips.WithDistanceOptions(o.distOpts...),
	}
}

// WithRepresentatives attaches a representative cycle to every interval.
// Costs one extra chain per simplex during reduction.
func WithRepresentatives() Option {
	return func(o *options) { o.representatives = true }
}

// WithMaxSimplices sets the Rips simplex budget (see rips.WithMaxSimplices).
func WithMaxSimplices(limit int) Option {
	if limit < 1 {
		panic("homology: WithMaxSimplices: limit must be >= 1")
	}

	return func(o *options) { o.maxSimplices = limit }
}

// WithLogger logs filtration and reduction statistics at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithRecorder reports filtration size, reduction time and interval counts.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = metrics.OrNop(r) }
}

// WithDistanceOptions forwards options to distance.Pairwise in Intervals.
func WithDistanceOptions(opts ...distance.Option) Option {
	return func(o *options) { o.distOpts = append(o.distOpts, opts...) }
}
