package neighborhood_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/neighborhood"
	"github.com/katalvlaran/lvtda/tdaerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, xs ...float64) *distance.Matrix {
	t.Helper()
	pts := make([][]float64, len(xs))
	for i, x := range xs {
		pts[i] = []float64{x}
	}
	m, err := distance.FromPoints(pts)
	require.NoError(t, err)

	return m
}

// TestNeighbors_InclusiveRadius checks self-inclusion and d ≤ r boundary.
func TestNeighbors_InclusiveRadius(t *testing.T) {
	m := line(t, 0, 1, 2, 5)
	idx, err := neighborhood.New(m, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, idx.Neighbors(0))
	assert.Equal(t, []int{0, 1, 2}, idx.Neighbors(1))
	assert.Equal(t, []int{3}, idx.Neighbors(3))
	assert.Equal(t, 3, idx.Size(1))
	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, 1.0, idx.Radius())
}

func TestNeighbors_ZeroAndInfiniteRadius(t *testing.T) {
	m := line(t, 0, 0, 3)
	idx, err := neighborhood.New(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, idx.Neighbors(0), "duplicates are at distance 0")

	idx, err = neighborhood.New(m, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, idx.Neighbors(2))
}

func TestTolerance(t *testing.T) {
	m := line(t, 0, 1.0000001)
	idx, err := neighborhood.New(m, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Size(0))

	idx, err = neighborhood.New(m, 1, neighborhood.WithTolerance(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Size(0))

	assert.Panics(t, func() { neighborhood.WithTolerance(-1) })
}

func TestNew_Errors(t *testing.T) {
	m := line(t, 0, 1)
	_, err := neighborhood.New(m, -0.5)
	assert.ErrorIs(t, err, neighborhood.ErrInvalidRadius)
	assert.ErrorIs(t, err, tdaerr.ErrInvalidParameter)

	_, err = neighborhood.New(m, math.NaN())
	assert.ErrorIs(t, err, tdaerr.ErrInvalidParameter)

	_, err = neighborhood.New(nil, 1)
	assert.ErrorIs(t, err, neighborhood.ErrNilMatrix)
}

func TestNearestDistances(t *testing.T) {
	m := line(t, 0, 1, 4, 10)
	assert.Equal(t, []float64{1, 1, 3, 6}, neighborhood.NearestDistances(m))
	assert.Equal(t, 2.0, neighborhood.MedianNearest(m))

	m = line(t, 0, 1, 4)
	assert.Equal(t, 1.0, neighborhood.MedianNearest(m))

	single := line(t, 7)
	assert.True(t, math.IsInf(neighborhood.MedianNearest(single), 1))
}
