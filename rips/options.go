package rips

import (
	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/metrics"
	"go.uber.org/zap"
)

// DefaultMaxSimplices caps the size of a built filtration.
const DefaultMaxSimplices = 2_000_000

const panicMaxSimplicesInvalid = "rips: WithMaxSimplices: limit must be >= 1"

// Option configures Build and BuildFromCloud.
type Option func(*options)

type options struct {
	maxSimplices int
	logger       *zap.Logger
	recorder     metrics.Recorder
	distOpts     []distance.Option
}

func gatherOptions(opts []Option) options {
	o := options{
		maxSimplices: DefaultMaxSimplices,
		logger:       zap.NewNop(),
		recorder:     metrics.Nop,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMaxSimplices sets the simplex budget. Panics if limit < 1.
func WithMaxSimplices(limit int) Option {
	if limit < 1 {
		panic(panicMaxSimplicesInvalid)
	}

	return func(o *options) { o.maxSimplices = limit }
}

// WithLogger logs filtration sizes at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithRecorder reports the filtration size to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = metrics.OrNop(r) }
}

// WithDistanceOptions forwards options to distance.Pairwise in BuildFromCloud.
func WithDistanceOptions(opts ...distance.Option) Option {
	return func(o *options) { o.distOpts = append(o.distOpts, opts...) }
}
