// SPDX-License-Identifier: MIT

package lvtda

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvtda/dbscan"
	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/homology"
	"github.com/katalvlaran/lvtda/mapper"
	"github.com/katalvlaran/lvtda/pointcloud"
	"go.uber.org/zap"
)

// Cloud bundles a validated point cloud with its lazily computed distance
// matrix. It is safe for concurrent use.
type Cloud struct {
	points *pointcloud.Cloud
	opts   options

	once    sync.Once
	dist    *distance.Matrix
	distErr error
}

// NewCloud validates points (see pointcloud.New) and returns a Cloud.
func NewCloud(points [][]float64, opts ...Option) (*Cloud, error) {
	pc, err := pointcloud.New(points)
	if err != nil {
		return nil, fmt.Errorf("NewCloud: %w", err)
	}

	return Wrap(pc, opts...), nil
}

// Wrap returns a Cloud around an already validated point cloud.
func Wrap(pc *pointcloud.Cloud, opts ...Option) *Cloud {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Cloud{points: pc, opts: o}
}

// Points returns the underlying point cloud.
func (c *Cloud) Points() *pointcloud.Cloud { return c.points }

// Distances returns the pairwise distance matrix, computed on first use and
// shared by every later call. The matrix must be treated as read-only.
func (c *Cloud) Distances() (*distance.Matrix, error) {
	c.once.Do(func() {
		c.dist, c.distErr = distance.Pairwise(c.points, distance.WithWorkers(c.opts.workers))
		if c.distErr == nil {
			c.opts.logger.Debug("distance matrix cached", zap.Int("points", c.points.Len()))
		}
	})

	return c.dist, c.distErr
}

// DBSCAN clusters the cloud (see dbscan.ClusterMatrix).
func (c *Cloud) DBSCAN(epsilon float64, minPoints int) (dbscan.Labels, error) {
	m, err := c.Distances()
	if err != nil {
		return nil, fmt.Errorf("DBSCAN: %w", err)
	}

	return dbscan.ClusterMatrix(m, epsilon, minPoints,
		dbscan.WithLogger(c.opts.logger),
		dbscan.WithRecorder(c.opts.recorder),
	)
}

// PersistenceIntervals returns the Rips persistence diagram in dimensions
// 0..maxDim (see homology.IntervalsMatrix). Extra homology options, such as
// homology.WithRepresentatives, are applied after the Cloud's own.
func (c *Cloud) PersistenceIntervals(maxDim int, maxDist float64, extra ...homology.Option) (homology.Diagram, error) {
	m, err := c.Distances()
	if err != nil {
		return nil, fmt.Errorf("PersistenceIntervals: %w", err)
	}
	opts := append([]homology.Option{
		homology.WithMaxSimplices(c.opts.maxSimplices),
		homology.WithLogger(c.opts.logger),
		homology.WithRecorder(c.opts.recorder),
	}, extra...)

	return homology.IntervalsMatrix(m, maxDim, maxDist, opts...)
}

// Mapper builds the Mapper graph (see mapper.BuildMatrix). Extra mapper
// options, such as a lens, are applied after the Cloud's own.
func (c *Cloud) Mapper(resolution int, overlap float64, minPoints int, extra ...mapper.Option) (*mapper.Graph, error) {
	m, err := c.Distances()
	if err != nil {
		return nil, fmt.Errorf("Mapper: %w", err)
	}
	opts := append([]mapper.Option{
		mapper.WithWorkers(c.opts.workers),
		mapper.WithLogger(c.opts.logger),
		mapper.WithRecorder(c.opts.recorder),
	}, extra...)

	return mapper.BuildMatrix(c.points, m, resolution, overlap, minPoints, opts...)
}
