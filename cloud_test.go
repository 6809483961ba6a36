package lvtda_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvtda"
	"github.com/katalvlaran/lvtda/dbscan"
	"github.com/katalvlaran/lvtda/homology"
	"github.com/katalvlaran/lvtda/mapper"
	"github.com/katalvlaran/lvtda/metrics"
	"github.com/katalvlaran/lvtda/pointcloud"
	"github.com/katalvlaran/lvtda/rips"
	"github.com/katalvlaran/lvtda/tdaerr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eightPoints = [][]float64{
	{0, 0}, {1, 0}, {0, 1}, {0, 2},
	{0, 10}, {1, 10}, {0, 11},
	{10, 0},
}

func TestNewCloud_ShapeError(t *testing.T) {
	_, err := lvtda.NewCloud([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, tdaerr.ErrShape)
	assert.ErrorIs(t, err, pointcloud.ErrRagged)
}

// TestCloud_DistancesCached checks the matrix is computed once, even under
// concurrent first use.
func TestCloud_DistancesCached(t *testing.T) {
	c, err := lvtda.NewCloud(eightPoints, lvtda.WithWorkers(2))
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]any, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := c.Distances()
			assert.NoError(t, err)
			got[i] = m
		}()
	}
	wg.Wait()
	for _, m := range got[1:] {
		assert.Same(t, got[0], m)
	}
	assert.Equal(t, 8, c.Points().Len())
}

func TestCloud_Operations(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)
	c, err := lvtda.NewCloud(eightPoints, lvtda.WithRecorder(rec))
	require.NoError(t, err)

	labels, err := c.DBSCAN(1.5, 2)
	require.NoError(t, err)
	assert.Equal(t, dbscan.Labels{1, 1, 1, 1, 2, 2, 2, 0}, labels)

	diag, err := c.PersistenceIntervals(0, math.Inf(1))
	require.NoError(t, err)
	assert.Len(t, diag.Dim(0), 8)
	assert.Len(t, diag.Dim(0).Pairs(0), 8)

	g, err := c.Mapper(1, 0.5, 2, mapper.WithEpsilon(mapper.FixedEpsilon(1.5)))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestCloud_PersistenceRepresentatives(t *testing.T) {
	c, err := lvtda.NewCloud([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)
	diag, err := c.PersistenceIntervals(1, math.Inf(1), homology.WithRepresentatives())
	require.NoError(t, err)
	for _, iv := range diag {
		assert.NotEmpty(t, iv.Cycle)
	}
}

func TestCloud_SimplexBudget(t *testing.T) {
	c, err := lvtda.NewCloud(eightPoints, lvtda.WithMaxSimplices(10))
	require.NoError(t, err)
	_, err = c.PersistenceIntervals(1, math.Inf(1))
	assert.ErrorIs(t, err, rips.ErrTooManySimplices)
	assert.ErrorIs(t, err, tdaerr.ErrResourceExceeded)
}

func TestCloud_InvalidParameters(t *testing.T) {
	c, err := lvtda.NewCloud(eightPoints)
	require.NoError(t, err)

	_, err = c.DBSCAN(-1, 2)
	assert.ErrorIs(t, err, tdaerr.ErrInvalidParameter)
	_, err = c.PersistenceIntervals(-1, 1)
	assert.ErrorIs(t, err, tdaerr.ErrInvalidParameter)
	_, err = c.Mapper(0, 0.5, 1)
	assert.ErrorIs(t, err, tdaerr.ErrInvalidParameter)

	assert.Panics(t, func() { lvtda.WithWorkers(0) })
	assert.Panics(t, func() { lvtda.WithMaxSimplices(0) })
}
