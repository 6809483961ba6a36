// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/lvtda/pointcloud"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Pairwise returns the Euclidean distance matrix of cloud.
//
// Stage 1 (Prepare): allocate the n×n result, diagonal left at zero.
// Stage 2 (Execute): one errgroup task per row i computes d(i, j) for j > i
// and writes both mirror cells; at most WithWorkers tasks run at once.
// Stage 3 (Finalize): wait and return.
//
// Complexity: O(n²·d) time, O(n²) memory.
func Pairwise(cloud *pointcloud.Cloud, opts ...Option) (*Matrix, error) {
	if cloud == nil {
		return nil, fmt.Errorf("Pairwise: nil cloud: %w", pointcloud.ErrEmptyCloud)
	}
	o := gatherOptions(opts)
	n := cloud.Len()
	m := newMatrix(n)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			a := cloud.Point(i)
			for j := i + 1; j < n; j++ {
				m.setPair(i, j, floats.Distance(a, cloud.Point(j), 2))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Pairwise: %w", err)
	}

	return m, nil
}

// FromPoints validates raw coordinates and returns their distance matrix.
// Errors match tdaerr.ErrShape when the points are malformed.
func FromPoints(points [][]float64, opts ...Option) (*Matrix, error) {
	cloud, err := pointcloud.New(points)
	if err != nil {
		return nil, fmt.Errorf("FromPoints: %w", err)
	}

	return Pairwise(cloud, opts...)
}
