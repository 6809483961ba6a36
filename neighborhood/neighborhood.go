// SPDX-License-Identifier: MIT

// Package neighborhood answers fixed-radius neighbor queries over a
// precomputed distance matrix.
//
// Neighbors(i) is self-inclusive: it lists every j with d(i, j) ≤ radius +
// tolerance, i itself among them, in ascending index order. The index is
// built eagerly from the matrix so each query is a slice lookup.
//
// Complexity: New is O(n²) time and O(n + |E|) memory, where |E| is the
// number of in-radius pairs.
package neighborhood

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/tdaerr"
)

// DefaultTolerance is added to the radius when comparing distances.
// Zero makes the comparison exact: d ≤ radius.
const DefaultTolerance = 0.0

var (
	// ErrInvalidRadius indicates a negative or NaN radius.
	ErrInvalidRadius = tdaerr.Kind(tdaerr.ErrInvalidParameter, "neighborhood: radius must be non-negative")

	// ErrNilMatrix indicates a nil distance matrix.
	ErrNilMatrix = tdaerr.Kind(tdaerr.ErrInvalidParameter, "neighborhood: distance matrix is nil")
)

const panicToleranceInvalid = "neighborhood: WithTolerance: tol must be finite, non-negative"

// Option configures an Index.
type Option func(*options)

type options struct {
	tol float64
}

// WithTolerance widens the radius by tol. Panics if tol is negative or not finite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// Index stores, for each point, its in-radius neighbors sorted ascending.
type Index struct {
	m      *distance.Matrix
	radius float64
	adj    [][]int
}

// New builds the neighbor lists of m at the given radius.
//
// Stage 1 (Validate): m non-nil, radius ≥ 0 and not NaN (+Inf is allowed and
// makes every point a neighbor of every other).
// Stage 2 (Execute): scan each row once, collecting j in ascending order.
//
// Complexity: O(n²).
func New(m *distance.Matrix, radius float64, opts ...Option) (*Index, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("New: radius %g: %w", radius, ErrInvalidRadius)
	}
	o := options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	limit := radius + o.tol
	n := m.N()
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		row := m.Row(i)
		var list []int
		for j, d := range row {
			if d <= limit {
				list = append(list, j)
			}
		}
		adj[i] = list
	}

	return &Index{m: m, radius: radius, adj: adj}, nil
}

// Len returns the number of indexed points.
func (x *Index) Len() int { return len(x.adj) }

// Radius returns the query radius the index was built with.
func (x *Index) Radius() float64 { return x.radius }

// Neighbors returns the neighbors of i (including i) in ascending order.
// The returned slice is shared; callers must not modify it.
func (x *Index) Neighbors(i int) []int { return x.adj[i] }

// Size returns |Neighbors(i)|.
func (x *Index) Size(i int) int { return len(x.adj[i]) }

// NearestDistances returns, for every point, the distance to its closest other
// point. A single-point matrix yields [+Inf].
// Complexity: O(n²).
func NearestDistances(m *distance.Matrix) []float64 {
	n := m.N()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		best := math.Inf(1)
		for j, d := range m.Row(i) {
			if j != i && d < best {
				best = d
			}
		}
		out[i] = best
	}

	return out
}

// MedianNearest returns the median of NearestDistances(m), averaging the two
// middle values for an even count. Returns +Inf for a single point.
func MedianNearest(m *distance.Matrix) float64 {
	nn := NearestDistances(m)
	sort.Float64s(nn)
	k := len(nn)
	if k%2 == 1 {
		return nn[k/2]
	}

	return (nn[k/2-1] + nn[k/2]) / 2
}
