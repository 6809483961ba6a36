// Package mapper builds the Mapper graph of a point cloud: a compressed,
// graph-shaped summary obtained by clustering the preimages of overlapping
// intervals of a real-valued lens.
//
// Pipeline:
//  1. Lens: one real value per point (default: the first coordinate).
//  2. Cover: `resolution` equal-width intervals over [min, max] of the lens,
//     consecutive intervals overlapping by the fraction `overlap`.
//  3. Cluster: for each interval, DBSCAN over the points whose lens value
//     falls inside it, with epsilon chosen per interval (default: 1.5 × the
//     median nearest-neighbor distance within the interval). Noise is
//     dropped; each cluster becomes a node.
//  4. Nerve: two nodes from different intervals are joined by an edge when
//     their member sets intersect.
//
// Nodes are numbered in (interval, cluster) order and edges sorted by
// (From, To), so the graph is identical for any worker count.
//
//	g, err := mapper.Build(cloud, 10, 0.3, 3, mapper.WithLens(mapper.PCA()))
//	for _, comp := range g.Components() { ... }
//
// Complexity: O(n²·d) for the distance matrix plus, per interval with k
// points, O(k²) for clustering.
package mapper
