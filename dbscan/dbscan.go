// SPDX-License-Identifier: MIT

package dbscan

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/neighborhood"
	"github.com/katalvlaran/lvtda/pointcloud"
	"go.uber.org/zap"
)

// unvisited marks a point no cluster has claimed yet. It is distinct from
// Noise so that noise can later be reclaimed as a border point.
const unvisited = -1

// Cluster runs DBSCAN on cloud.
//
// Stage 1 (Validate): epsilon ≥ 0, minPoints ≥ 1.
// Stage 2 (Prepare): pairwise distances.
// Stage 3 (Execute): ClusterMatrix.
//
// Errors: ErrInvalidEpsilon, ErrInvalidMinPoints (tdaerr.ErrInvalidParameter).
func Cluster(cloud *pointcloud.Cloud, epsilon float64, minPoints int, opts ...Option) (Labels, error) {
	if err := validate(epsilon, minPoints); err != nil {
		return nil, fmt.Errorf("Cluster: %w", err)
	}
	if cloud == nil {
		return nil, fmt.Errorf("Cluster: %w", ErrNilInput)
	}
	o := gatherOptions(opts)
	m, err := distance.Pairwise(cloud, o.distOpts...)
	if err != nil {
		return nil, fmt.Errorf("Cluster: %w", err)
	}

	return clusterMatrix(m, epsilon, minPoints, o)
}

// ClusterMatrix runs DBSCAN on a precomputed distance matrix.
//
// Stage 1 (Validate): epsilon ≥ 0, minPoints ≥ 1, m non-nil.
// Stage 2 (Index): self-inclusive ε-neighborhoods.
// Stage 3 (Scan): for i ascending, an unvisited core point opens a new
// cluster, grown breadth-first; a non-core unvisited point is marked noise.
// Stage 4 (Finalize): report counts.
//
// Complexity: O(n²) time, O(n + |E|) memory.
func ClusterMatrix(m *distance.Matrix, epsilon float64, minPoints int, opts ...Option) (Labels, error) {
	if err := validate(epsilon, minPoints); err != nil {
		return nil, fmt.Errorf("ClusterMatrix: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("ClusterMatrix: %w", ErrNilInput)
	}

	return clusterMatrix(m, epsilon, minPoints, gatherOptions(opts))
}

func validate(epsilon float64, minPoints int) error {
	if epsilon < 0 || math.IsNaN(epsilon) {
		return fmt.Errorf("epsilon %g: %w", epsilon, ErrInvalidEpsilon)
	}
	if minPoints < 1 {
		return fmt.Errorf("minPoints %d: %w", minPoints, ErrInvalidMinPoints)
	}

	return nil
}

func clusterMatrix(m *distance.Matrix, epsilon float64, minPoints int, o options) (Labels, error) {
	// Stage 2: inclusive neighborhoods, ascending.
	var nOpts []neighborhood.Option
	if o.tol > 0 {
		nOpts = append(nOpts, neighborhood.WithTolerance(o.tol))
	}
	idx, err := neighborhood.New(m, epsilon, nOpts...)
	if err != nil {
		return nil, fmt.Errorf("ClusterMatrix: %w", err)
	}

	n := idx.Len()
	labels := make(Labels, n)
	for i := range labels {
		labels[i] = unvisited
	}
	isCore := func(p int) bool { return idx.Size(p) >= minPoints }

	// Stage 3: scan by index; every unlabelled core point seeds a cluster
	// grown breadth-first.
	next := 0
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if labels[i] != unvisited {
			continue
		}
		if !isCore(i) {
			labels[i] = Noise
			continue
		}

		next++
		labels[i] = next
		size := 1
		queue = append(queue[:0], i)
		for head := 0; head < len(queue); head++ {
			p := queue[head]
			if !isCore(p) {
				continue // border points do not propagate
			}
			for _, q := range idx.Neighbors(p) {
				switch labels[q] {
				case unvisited:
					labels[q] = next
					size++
					queue = append(queue, q)
				case Noise:
					labels[q] = next // noise reclaimed as border
					size++
				}
			}
		}
		o.logger.Debug("dbscan cluster discovered",
			zap.Int("cluster", next),
			zap.Int("seed", i),
			zap.Int("size", size),
		)
	}

	// Stage 4: report.
	noise := 0
	for _, c := range labels {
		if c == Noise {
			noise++
		}
	}
	o.logger.Debug("dbscan finished",
		zap.Int("points", n),
		zap.Int("clusters", next),
		zap.Int("noise", noise),
		zap.Float64("epsilon", epsilon),
		zap.Int("min_points", minPoints),
	)
	o.recorder.ObserveClusters(next, noise)

	return labels, nil
}
