// Package lvtda is an in-memory topological data analysis toolkit: it turns a
// Euclidean point cloud into clusters, persistence diagrams and Mapper graphs.
//
// What is inside?
//
//	A pure-Go, deterministic engine that brings together:
//		• Distances: parallel Euclidean distance matrices
//		• Density clustering: DBSCAN with self-inclusive ε-neighborhoods
//		• Filtrations: Vietoris–Rips complexes with a simplex budget
//		• Persistent homology: mod-2 column reduction, essential classes,
//		  representative cycles
//		• Mapper: lens, overlapping cover, per-interval clustering, nerve graph
//
// Everything is organised in leaf-first subpackages:
//
//	pointcloud/   - validated, immutable n×d point clouds
//	distance/     - symmetric distance matrices (errgroup + gonum)
//	neighborhood/ - fixed-radius neighbor index
//	dbscan/       - density-based clustering
//	unionfind/    - disjoint-set forest
//	rips/         - Vietoris-Rips filtrations
//	homology/     - persistence intervals
//	mapper/       - Mapper graphs
//	metrics/      - Prometheus collectors
//	tdaerr/       - error taxonomy shared by all packages
//
// The Cloud type in this package is a convenience facade: it validates the
// points once, caches their distance matrix, and forwards engine-wide options
// (logger, workers, simplex budget, metrics recorder) to every operation.
//
//	cloud, err := lvtda.NewCloud(points, lvtda.WithWorkers(4))
//	labels, err := cloud.DBSCAN(0.5, 5)
//	diagram, err := cloud.PersistenceIntervals(1, 2.0)
//	graph, err := cloud.Mapper(10, 0.3, 3)
//
// Errors from every package match one of tdaerr.ErrShape,
// tdaerr.ErrInvalidParameter or tdaerr.ErrResourceExceeded under errors.Is.
//
//	go get github.com/katalvlaran/lvtda
package lvtda
