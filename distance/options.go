// SPDX-License-Identifier: MIT

package distance

import (
	"math"
	"runtime"
)

// DefaultEpsilon is the tolerance used by ValidateSymmetric when comparing
// m[i][j] to m[j][i] and the diagonal to zero.
const DefaultEpsilon = 1e-9

const (
	panicWorkersInvalid = "distance: WithWorkers: workers must be >= 1"
	panicEpsilonInvalid = "distance: WithEpsilon: eps must be finite, non-negative"
)

// Option configures Pairwise, FromPoints and FromRows.
type Option func(*options)

type options struct {
	workers int     // ≥ 1; defaults to GOMAXPROCS
	eps     float64 // FromRows validation tolerance
}

func defaultOptions() options {
	return options{workers: runtime.GOMAXPROCS(0), eps: DefaultEpsilon}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWorkers bounds the number of rows computed concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithEpsilon sets the tolerance FromRows uses for its symmetry and diagonal checks.
// Panics if eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}
