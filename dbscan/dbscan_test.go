package dbscan_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtda/dbscan"
	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/metrics"
	"github.com/katalvlaran/lvtda/pointcloud"
	"github.com/katalvlaran/lvtda/tdaerr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var eightPoints = [][]float64{
	{0, 0}, {1, 0}, {0, 1}, {0, 2},
	{0, 10}, {1, 10}, {0, 11},
	{10, 0},
}

// TestCluster_EightPoints is the reference labelling of two chains and one outlier.
func TestCluster_EightPoints(t *testing.T) {
	labels, err := dbscan.Cluster(pointcloud.MustNew(eightPoints), 1.5, 2)
	require.NoError(t, err)

	assert.Equal(t, dbscan.Labels{1, 1, 1, 1, 2, 2, 2, 0}, labels)
	assert.Equal(t, 2, labels.NumClusters())
	assert.Equal(t, []int{4, 5, 6}, labels.Members(2))
	assert.Equal(t, []int{7}, labels.Noise())
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6}}, labels.Clusters())
}

// TestCluster_Deterministic runs the same input repeatedly, in parallel distance mode.
func TestCluster_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pts := make([][]float64, 200)
	for i := range pts {
		pts[i] = []float64{rng.Float64() * 10, rng.Float64() * 10}
	}
	cloud := pointcloud.MustNew(pts)

	first, err := dbscan.Cluster(cloud, 0.8, 4)
	require.NoError(t, err)
	for run := 0; run < 5; run++ {
		again, err := dbscan.Cluster(cloud, 0.8, 4, dbscan.WithDistanceOptions(distance.WithWorkers(run+1)))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestCluster_MinPointsOne makes every isolated point its own cluster.
func TestCluster_MinPointsOne(t *testing.T) {
	labels, err := dbscan.Cluster(pointcloud.MustNew([][]float64{{0}, {10}, {20}, {20.5}}), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, dbscan.Labels{1, 2, 3, 3}, labels)
	assert.Empty(t, labels.Noise())
}

// TestCluster_EpsilonIsInclusive checks that d == ε counts as a neighbor.
func TestCluster_EpsilonIsInclusive(t *testing.T) {
	cloud := pointcloud.MustNew([][]float64{{0}, {2}})
	labels, err := dbscan.Cluster(cloud, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, dbscan.Labels{1, 1}, labels)

	labels, err = dbscan.Cluster(cloud, math.Nextafter(2, 0), 2)
	require.NoError(t, err)
	assert.Equal(t, dbscan.Labels{0, 0}, labels)
}

// TestCluster_BorderFirstClaimWins places a border point between two cores.
//
// Points 0,1 and 3,4 are dense pairs; point 2 sits within ε of 1 and 3 but
// has only those two neighbors plus itself (3 < minPoints=4 makes it border).
func TestCluster_BorderFirstClaimWins(t *testing.T) {
	cloud := pointcloud.MustNew([][]float64{{0}, {0.5}, {1.5}, {2.5}, {3}, {-0.5}, {3.5}})
	// neighbors at ε=1: 0:{0,1,5} 1:{0,1,2,5} 2:{1,2,3} 3:{2,3,4,6} 4:{3,4,6}
	labels, err := dbscan.Cluster(cloud, 1, 4)
	require.NoError(t, err)

	assert.Equal(t, 1, labels[2], "border point keeps the first cluster")
	assert.Equal(t, dbscan.Labels{1, 1, 1, 2, 2, 1, 2}, labels)
}

// TestCluster_NoiseReclaimedAsBorder scans a border point before its core.
func TestCluster_NoiseReclaimedAsBorder(t *testing.T) {
	cloud := pointcloud.MustNew([][]float64{{0}, {1}, {1.5}, {2}})
	// 0 has {0,1}: not core at minPoints 3, marked noise first; 1 is core.
	labels, err := dbscan.Cluster(cloud, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, dbscan.Labels{1, 1, 1, 1}, labels)
}

func TestCluster_AllNoise(t *testing.T) {
	labels, err := dbscan.Cluster(pointcloud.MustNew([][]float64{{0}, {5}, {10}}), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, dbscan.Labels{0, 0, 0}, labels)
	assert.Equal(t, 0, labels.NumClusters())
	assert.Empty(t, labels.Clusters())
}

func TestCluster_InvalidParameters(t *testing.T) {
	cloud := pointcloud.MustNew(eightPoints)
	cases := []struct {
		name   string
		eps    float64
		minPts int
		want   error
	}{
		{"negative epsilon", -1, 2, dbscan.ErrInvalidEpsilon},
		{"nan epsilon", math.NaN(), 2, dbscan.ErrInvalidEpsilon},
		{"zero minPoints", 1, 0, dbscan.ErrInvalidMinPoints},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			labels, err := dbscan.Cluster(cloud, tc.eps, tc.minPts)
			assert.Nil(t, labels)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, tdaerr.ErrInvalidParameter)
		})
	}

	_, err := dbscan.ClusterMatrix(nil, 1, 1)
	assert.ErrorIs(t, err, dbscan.ErrNilInput)
	_, err = dbscan.Cluster(nil, 1, 1)
	assert.ErrorIs(t, err, dbscan.ErrNilInput)
}

// TestClusterMatrix_Tolerance widens ε on a precomputed matrix.
func TestClusterMatrix_Tolerance(t *testing.T) {
	m, err := distance.FromRows([][]float64{{0, 1.05}, {1.05, 0}})
	require.NoError(t, err)

	labels, err := dbscan.ClusterMatrix(m, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, dbscan.Labels{0, 0}, labels)

	labels, err = dbscan.ClusterMatrix(m, 1, 2, dbscan.WithTolerance(0.1))
	require.NoError(t, err)
	assert.Equal(t, dbscan.Labels{1, 1}, labels)

	for _, tol := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { dbscan.WithTolerance(tol) }, "tol %v", tol)
	}
	assert.NotPanics(t, func() { dbscan.WithTolerance(0) })
}

func TestCluster_LoggerAndRecorder(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rec, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	_, err = dbscan.Cluster(pointcloud.MustNew(eightPoints), 1.5, 2,
		dbscan.WithLogger(zap.New(core)),
		dbscan.WithRecorder(rec),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("dbscan cluster discovered").Len())
	done := logs.FilterMessage("dbscan finished").All()
	require.Len(t, done, 1)
	assert.EqualValues(t, 1, done[0].ContextMap()["noise"])
}
