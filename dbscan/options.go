package dbscan

import (
	"math"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/metrics"
	"go.uber.org/zap"
)

// Option configures a clustering run.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	recorder metrics.Recorder
	tol      float64
	distOpts []distance.Option
}

func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop(), recorder: metrics.Nop}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger logs cluster discoveries at debug level. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithRecorder reports cluster and noise counts to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = metrics.OrNop(r) }
}

// WithTolerance widens epsilon by tol when comparing distances.
// See neighborhood.WithTolerance. Panics if tol is negative or not finite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("dbscan: WithTolerance: tol must be finite, non-negative")
	}

	return func(o *options) { o.tol = tol }
}

// WithDistanceOptions forwards options to distance.Pairwise when Cluster
// computes the matrix itself.
func WithDistanceOptions(opts ...distance.Option) Option {
	return func(o *options) { o.distOpts = append(o.distOpts, opts...) }
}
