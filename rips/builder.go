// SPDX-License-Identifier: MIT

package rips

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/pointcloud"
	"go.uber.org/zap"
)

// BuildFromCloud computes pairwise distances of cloud and calls Build.
func BuildFromCloud(cloud *pointcloud.Cloud, maxDim int, maxDist float64, opts ...Option) (*Filtration, error) {
	if cloud == nil {
		return nil, fmt.Errorf("BuildFromCloud: %w", ErrNilInput)
	}
	if err := validate(maxDim, maxDist); err != nil {
		return nil, fmt.Errorf("BuildFromCloud: %w", err)
	}
	o := gatherOptions(opts)
	m, err := distance.Pairwise(cloud, o.distOpts...)
	if err != nil {
		return nil, fmt.Errorf("BuildFromCloud: %w", err)
	}

	return build(m, maxDim, maxDist, o)
}

// Build returns the Vietoris–Rips filtration of m up to dimension maxDim,
// keeping edges with d ≤ maxDist. maxDist may be +Inf.
//
// Stage 1 (Validate): maxDim ≥ 0; maxDist ≥ 0 and not NaN.
// Stage 2 (Graph): upper adjacency lists of the threshold graph.
// Stage 3 (Expand): incremental clique expansion from every vertex, charging
// each emitted simplex against the budget.
// Stage 4 (Finalize): sort into filtration order.
//
// Errors: ErrInvalidMaxDim, ErrInvalidMaxDist, ErrTooManySimplices.
func Build(m *distance.Matrix, maxDim int, maxDist float64, opts ...Option) (*Filtration, error) {
	if m == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilInput)
	}
	if err := validate(maxDim, maxDist); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return build(m, maxDim, maxDist, gatherOptions(opts))
}

func validate(maxDim int, maxDist float64) error {
	if maxDim < 0 {
		return fmt.Errorf("maxDim %d: %w", maxDim, ErrInvalidMaxDim)
	}
	if maxDist < 0 || math.IsNaN(maxDist) {
		return fmt.Errorf("maxDist %g: %w", maxDist, ErrInvalidMaxDist)
	}

	return nil
}

// expander carries the clique expansion state.
type expander struct {
	m       *distance.Matrix
	maxDist float64
	maxDim  int
	budget  int
	out     []Simplex
}

func (e *expander) emit(vertices []int, value float64) error {
	if len(e.out) >= e.budget {
		return fmt.Errorf("Build: more than %d simplices: %w", e.budget, ErrTooManySimplices)
	}
	verts := make([]int, len(vertices))
	copy(verts, vertices)
	e.out = append(e.out, Simplex{Vertices: verts, Value: value})

	return nil
}

// expand emits sigma, then extends it by each candidate v in turn. cand holds
// the vertices greater than max(sigma) adjacent to every vertex of sigma.
func (e *expander) expand(sigma []int, value float64, cand []int) error {
	if err := e.emit(sigma, value); err != nil {
		return err
	}
	if len(sigma) > e.maxDim {
		return nil
	}
	// Each candidate raises the value to its farthest edge into sigma and
	// keeps only later candidates it is adjacent to.
	for a, v := range cand {
		next := value
		row := e.m.Row(v)
		for _, u := range sigma {
			next = math.Max(next, row[u])
		}
		var rest []int
		for _, w := range cand[a+1:] {
			if row[w] <= e.maxDist {
				rest = append(rest, w)
			}
		}
		if err := e.expand(append(sigma, v), next, rest); err != nil {
			return err
		}
	}

	return nil
}

func build(m *distance.Matrix, maxDim int, maxDist float64, o options) (*Filtration, error) {
	n := m.N()
	// No simplex has more than n vertices.
	dim := min(maxDim, max(n-1, 0))
	e := &expander{m: m, maxDist: maxDist, maxDim: dim, budget: o.maxSimplices}

	// Stage 2+3: upper neighbors of v in the threshold graph, then expand.
	sigma := make([]int, 1, dim+1)
	for v := 0; v < n; v++ {
		var upper []int
		if dim > 0 {
			row := m.Row(v)
			for w := v + 1; w < n; w++ {
				if row[w] <= maxDist {
					upper = append(upper, w)
				}
			}
		}
		sigma[0] = v
		if err := e.expand(sigma[:1], 0, upper); err != nil {
			o.logger.Debug("rips budget exceeded",
				zap.Int("points", n),
				zap.Int("budget", e.budget),
			)
			return nil, err
		}
	}

	// Stage 4: filtration order.
	f := newFiltration(e.out)
	o.logger.Debug("rips filtration built",
		zap.Int("points", n),
		zap.Int("max_dim", maxDim),
		zap.Float64("max_dist", maxDist),
		zap.Ints("per_dim", f.CountByDim()),
	)
	o.recorder.ObserveFiltration(f.Len())

	return f, nil
}
