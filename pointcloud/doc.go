// Package pointcloud defines the immutable point cloud consumed by every
// lvtda engine.
//
// A Cloud is an ordered sequence of n points sharing one dimension d. It is
// validated once on construction (non-empty, rectangular, finite) and its
// coordinates are copied, so later mutation of the caller's slices cannot
// leak into a running computation.
//
//	cloud, err := pointcloud.New([][]float64{{0, 0}, {1, 0}, {0, 1}})
//	if errors.Is(err, tdaerr.ErrShape) { ... }
//
// Complexity: construction is O(n·d) time and memory.
package pointcloud
