// Package distance computes and stores Euclidean pairwise distance matrices.
//
// A Matrix is a dense, symmetric n×n table with a zero diagonal, stored flat in
// row-major order. It is produced once per point cloud by Pairwise and then
// shared read-only by the neighborhood, dbscan, rips and mapper packages.
//
// Pairwise fans rows out over a bounded errgroup worker pool (WithWorkers).
// Every unordered pair (i, j), i < j, is computed by exactly one task, which
// writes both [i][j] and [j][i]; the result is bit-identical for any worker
// count.
//
//	cloud, _ := pointcloud.New(points)
//	m, err := distance.Pairwise(cloud, distance.WithWorkers(4))
//	d := m.At(0, 3)
//
// Complexity: O(n²·d) time, O(n²) memory.
package distance
