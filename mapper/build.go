// SPDX-License-Identifier: MIT

package mapper

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtda/dbscan"
	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/pointcloud"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Build returns the Mapper graph of cloud.
//
// Stage 1 (Validate): resolution ≥ 1, overlap in (0, 1), minPoints ≥ 1.
// Stage 2 (Lens): pairwise distances, then one lens value per point.
// Stage 3 (Cover): NewCover over the lens range.
// Stage 4 (Cluster): each interval is clustered independently on the errgroup
// pool; results land in per-interval slots.
// Stage 5 (Nerve): nodes numbered in (interval, cluster) order, edges between
// nodes sharing points.
//
// Errors: ErrInvalidResolution, ErrInvalidOverlap, ErrInvalidMinPoints,
// ErrInvalidLens (tdaerr.ErrInvalidParameter); ErrLensValues (tdaerr.ErrShape).
func Build(cloud *pointcloud.Cloud, resolution int, overlap float64, minPoints int, opts ...Option) (*Graph, error) {
	if cloud == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilInput)
	}
	if err := validate(resolution, overlap, minPoints); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	o := gatherOptions(opts)
	m, err := distance.Pairwise(cloud, distance.WithWorkers(o.workers))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return build(cloud, m, resolution, overlap, minPoints, o)
}

// BuildMatrix is Build with precomputed distances; m must describe cloud.
func BuildMatrix(cloud *pointcloud.Cloud, m *distance.Matrix, resolution int, overlap float64, minPoints int, opts ...Option) (*Graph, error) {
	if cloud == nil || m == nil {
		return nil, fmt.Errorf("BuildMatrix: %w", ErrNilInput)
	}
	if m.N() != cloud.Len() {
		return nil, fmt.Errorf("BuildMatrix: matrix covers %d points, cloud has %d: %w", m.N(), cloud.Len(), distance.ErrNotSquare)
	}
	if err := validate(resolution, overlap, minPoints); err != nil {
		return nil, fmt.Errorf("BuildMatrix: %w", err)
	}

	return build(cloud, m, resolution, overlap, minPoints, gatherOptions(opts))
}

func validate(resolution int, overlap float64, minPoints int) error {
	if resolution < 1 {
		return fmt.Errorf("resolution %d: %w", resolution, ErrInvalidResolution)
	}
	if !(overlap > 0 && overlap < 1) {
		return fmt.Errorf("overlap %g: %w", overlap, ErrInvalidOverlap)
	}
	if minPoints < 1 {
		return fmt.Errorf("minPoints %d: %w", minPoints, ErrInvalidMinPoints)
	}

	return nil
}

func build(cloud *pointcloud.Cloud, m *distance.Matrix, resolution int, overlap float64, minPoints int, o options) (*Graph, error) {
	values, err := o.lens.Values(cloud, m)
	if err != nil {
		return nil, fmt.Errorf("Build: lens: %w", err)
	}
	if len(values) != cloud.Len() {
		return nil, fmt.Errorf("Build: lens returned %d values for %d points: %w", len(values), cloud.Len(), ErrLensValues)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Build: lens value %g at point %d: %w", v, i, ErrLensValues)
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}

	cover, err := NewCover(lo, hi, resolution, overlap)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// Stage 4: one slot per interval, filled concurrently
	slots := make([][]Node, len(cover.Intervals))
	var g errgroup.Group
	g.SetLimit(o.workers)
	for k := range cover.Intervals {
		g.Go(func() error {
			nodes, err := clusterInterval(m, cover.Members(k, values), k, minPoints, o)
			if err != nil {
				return fmt.Errorf("interval %d: %w", k, err)
			}
			slots[k] = nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	graph := &Graph{Cover: cover}
	for _, nodes := range slots {
		for _, n := range nodes {
			n.ID = len(graph.Nodes)
			graph.Nodes = append(graph.Nodes, n)
		}
	}
	graph.Edges = nerve(graph.Nodes, cloud.Len())

	o.logger.Debug("mapper graph built",
		zap.Int("points", cloud.Len()),
		zap.Int("intervals", len(cover.Intervals)),
		zap.Int("nodes", len(graph.Nodes)),
		zap.Int("edges", len(graph.Edges)),
	)
	o.recorder.ObserveMapper(len(graph.Nodes), len(graph.Edges))

	return graph, nil
}

// clusterInterval runs DBSCAN over the points of one interval and returns
// its clusters as nodes with Interval set and ID unset.
func clusterInterval(m *distance.Matrix, members []int, k, minPoints int, o options) ([]Node, error) {
	if len(members) == 0 {
		return nil, nil
	}
	sub, err := m.Submatrix(members)
	if err != nil {
		return nil, err
	}
	eps := o.epsilon.Epsilon(sub)
	labels, err := dbscan.ClusterMatrix(sub, eps, minPoints,
		dbscan.WithLogger(o.logger),
		dbscan.WithRecorder(o.recorder),
	)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("mapper interval clustered",
		zap.Int("interval", k),
		zap.Int("points", len(members)),
		zap.Float64("epsilon", eps),
		zap.Int("clusters", labels.NumClusters()),
	)

	clusters := labels.Clusters()
	nodes := make([]Node, 0, len(clusters))
	for c, local := range clusters {
		global := make([]int, len(local))
		for a, i := range local {
			global[a] = members[i]
		}
		nodes = append(nodes, Node{Interval: k, Cluster: c + 1, Members: global})
	}

	return nodes, nil
}

// nerve joins nodes of different intervals whose members intersect.
// Complexity: O(Σ|members| + Σ_p deg(p)²).
func nerve(nodes []Node, n int) []Edge {
	byPoint := make([][]int, n)
	for _, node := range nodes {
		for _, p := range node.Members {
			byPoint[p] = append(byPoint[p], node.ID)
		}
	}

	shared := make(map[[2]int]int)
	for _, ids := range byPoint {
		for a := 0; a < len(ids); a++ {
			for b := a + 1; b < len(ids); b++ {
				if nodes[ids[a]].Interval == nodes[ids[b]].Interval {
					continue
				}
				shared[[2]int{ids[a], ids[b]}]++
			}
		}
	}

	edges := make([]Edge, 0, len(shared))
	for key, count := range shared {
		edges = append(edges, Edge{From: key[0], To: key[1], Shared: count})
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].From != edges[b].From {
			return edges[a].From < edges[b].From
		}
		return edges[a].To < edges[b].To
	})

	return edges
}
