// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/pointcloud"
	"github.com/katalvlaran/lvtda/rips"
	"github.com/katalvlaran/lvtda/unionfind"
)

// Intervals returns the persistence intervals of the Vietoris–Rips
// filtration of cloud in homology dimensions 0..maxDim, considering edges of
// length at most maxDist.
//
// Errors: ErrInvalidMaxDim, ErrInvalidMaxDist (tdaerr.ErrInvalidParameter),
// rips.ErrTooManySimplices (tdaerr.ErrResourceExceeded).
func Intervals(cloud *pointcloud.Cloud, maxDim int, maxDist float64, opts ...Option) (Diagram, error) {
	if cloud == nil {
		return nil, fmt.Errorf("Intervals: %w", ErrNilInput)
	}
	if err := validate(maxDim, maxDist); err != nil {
		return nil, fmt.Errorf("Intervals: %w", err)
	}
	o := gatherOptions(opts)
	m, err := distance.Pairwise(cloud, o.distOpts...)
	if err != nil {
		return nil, fmt.Errorf("Intervals: %w", err)
	}

	return intervals(m, maxDim, maxDist, o)
}

// IntervalsMatrix is Intervals over a precomputed distance matrix.
func IntervalsMatrix(m *distance.Matrix, maxDim int, maxDist float64, opts ...Option) (Diagram, error) {
	if m == nil {
		return nil, fmt.Errorf("IntervalsMatrix: %w", ErrNilInput)
	}
	if err := validate(maxDim, maxDist); err != nil {
		return nil, fmt.Errorf("IntervalsMatrix: %w", err)
	}

	return intervals(m, maxDim, maxDist, gatherOptions(opts))
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

func intervals(m *distance.Matrix, maxDim int, maxDist float64, o options) (Diagram, error) {
	// Dimensions above n-1 are empty; clamping also keeps maxDim+1 in range.
	dim := min(maxDim, max(m.N()-1, 0))
	f, err := rips.Build(m, dim+1, maxDist, o.ripsOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Intervals: %w", err)
	}

	return compute(f, dim, o), nil
}

// SingleLinkage returns the merge heights of single-linkage clustering of m,
// ascending: n-1 values for n points. These equal the finite H0 deaths of
// the Rips filtration.
//
// Kruskal over all pairs sorted by (distance, i, j) with a union-find forest.
// Complexity: O(n² log n).
func SingleLinkage(m *distance.Matrix) []float64 {
	n := m.N()
	type edge struct {
		i, j int
		d    float64
	}
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{i, j, row[j]})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].d < edges[b].d })

	uf := unionfind.New(n)
	heights := make([]float64, 0, n-1)
	for _, e := range edges {
		if uf.Union(e.i, e.j) {
			heights = append(heights, e.d)
			if uf.Count() == 1 {
				break
			}
		}
	}

	return heights
}
