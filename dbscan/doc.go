// Package dbscan implements density-based clustering (DBSCAN) over a
// Euclidean point cloud or a precomputed distance matrix.
//
// Definitions (ε = epsilon, neighborhoods are self-inclusive, d ≤ ε):
//   - core point: |N_ε(p)| ≥ minPoints;
//   - border point: not core, but inside N_ε of some core point;
//   - noise: neither.
//
// Labels are 0 for noise and 1..k for clusters, numbered in the order they
// are discovered. Discovery scans points in ascending index order; a
// cluster grows breadth-first in ascending neighbor order, only core points
// propagate, and a border point reachable from two clusters keeps the label
// of the first one that reached it. The result is therefore fully
// deterministic for a given input order.
//
//	labels, err := dbscan.Cluster(cloud, 1.5, 2)
//	for c := 1; c <= labels.NumClusters(); c++ { members := labels.Members(c) }
//
// Complexity: O(n²) time for the neighborhood index plus O(n + |E|) for the
// expansion; O(n + |E|) memory.
package dbscan
