// SPDX-License-Identifier: MIT

package lvtda

import (
	"runtime"

	"github.com/katalvlaran/lvtda/metrics"
	"github.com/katalvlaran/lvtda/rips"
	"go.uber.org/zap"
)

// Option configures a Cloud. Options apply to every operation on it.
type Option func(*options)

type options struct {
	logger       *zap.Logger
	workers      int
	maxSimplices int
	recorder     metrics.Recorder
}

func defaultOptions() options {
	return options{
		logger:       zap.NewNop(),
		workers:      runtime.GOMAXPROCS(0),
		maxSimplices: rips.DefaultMaxSimplices,
		recorder:     metrics.Nop,
	}
}

// WithLogger sets the structured logger passed to every engine.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithWorkers bounds parallelism of distance rows and Mapper intervals.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("lvtda: WithWorkers: workers must be >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithMaxSimplices caps the Rips filtration size for PersistenceIntervals.
// Panics if limit < 1.
func WithMaxSimplices(limit int) Option {
	if limit < 1 {
		panic("lvtda: WithMaxSimplices: limit must be >= 1")
	}

	return func(o *options) { o.maxSimplices = limit }
}

// WithRecorder reports engine measurements to r (see metrics.New).
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = metrics.OrNop(r) }
}
