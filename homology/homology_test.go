package homology_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/homology"
	"github.com/katalvlaran/lvtda/pointcloud"
	"github.com/katalvlaran/lvtda/rips"
	"github.com/katalvlaran/lvtda/tdaerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var inf = math.Inf(1)

func randomCloud(seed int64, n, d int) *pointcloud.Cloud {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, d)
		for k := range pts[i] {
			pts[i][k] = rng.Float64()
		}
	}

	return pointcloud.MustNew(pts)
}

// TestCompute_TextbookFiltration reduces a hand-built 4-vertex complex with
// two 1-cycles that die at different times.
func TestCompute_TextbookFiltration(t *testing.T) {
	f, err := rips.New([]rips.Simplex{
		{Vertices: []int{0}, Value: 0},
		{Vertices: []int{1}, Value: 0},
		{Vertices: []int{2}, Value: 1},
		{Vertices: []int{3}, Value: 1},
		{Vertices: []int{0, 1}, Value: 1},
		{Vertices: []int{1, 2}, Value: 1},
		{Vertices: []int{2, 3}, Value: 2},
		{Vertices: []int{0, 3}, Value: 2},
		{Vertices: []int{0, 2}, Value: 3},
		{Vertices: []int{0, 1, 2}, Value: 4},
		{Vertices: []int{0, 2, 3}, Value: 5},
	})
	require.NoError(t, err)

	diag, err := homology.Compute(f)
	require.NoError(t, err)

	assert.Equal(t, [][2]float64{{0, 1}, {0, inf}, {1, 1}, {1, 2}}, diag.Pairs(0))
	assert.Equal(t, [][2]float64{{2, 5}, {3, 4}}, diag.Pairs(1))
	assert.Equal(t, []int{0, 1}, diag.Dims())
	assert.Equal(t, 2, diag.Betti(1, 3.5))
	assert.Equal(t, 1, diag.Betti(1, 4))
}

// TestIntervals_Triangle reports the zero-length H1 class of a triangle.
func TestIntervals_Triangle(t *testing.T) {
	cloud := pointcloud.MustNew([][]float64{{0, 0}, {1, 0}, {1, 2}})
	diag, err := homology.Intervals(cloud, 1, inf)
	require.NoError(t, err)

	assert.Equal(t, [][2]float64{{0, 1}, {0, 2}, {0, inf}}, diag.Pairs(0))
	h1 := diag.Dim(1)
	require.Len(t, h1, 1)
	assert.Equal(t, math.Sqrt(5), h1[0].Birth)
	assert.Equal(t, h1[0].Birth, h1[0].Death)
	assert.Equal(t, 0.0, h1[0].Persistence())
}

// TestIntervals_MaxDimBeyondPoints matches maxDim = n-1 for any larger maxDim.
func TestIntervals_MaxDimBeyondPoints(t *testing.T) {
	cloud := pointcloud.MustNew([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	want, err := homology.Intervals(cloud, 3, inf)
	require.NoError(t, err)

	for _, maxDim := range []int{4, 1 << 40, math.MaxInt} {
		diag, err := homology.Intervals(cloud, maxDim, inf)
		require.NoError(t, err, "maxDim %d", maxDim)
		assert.Equal(t, want, diag, "maxDim %d", maxDim)
	}
}

// TestIntervals_UnitSquare finds one long-lived loop closed by the diagonals.
func TestIntervals_UnitSquare(t *testing.T) {
	cloud := pointcloud.MustNew([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	diag, err := homology.Intervals(cloud, 1, inf, homology.WithRepresentatives())
	require.NoError(t, err)

	assert.Equal(t, [][2]float64{{0, 1}, {0, 1}, {0, 1}, {0, inf}}, diag.Pairs(0))

	h1 := diag.Dim(1)
	var long []homology.Interval
	for _, iv := range h1 {
		assert.False(t, iv.IsEssential())
		if iv.Persistence() > 0 {
			long = append(long, iv)
		}
	}
	require.Len(t, long, 1)
	assert.Equal(t, 1.0, long[0].Birth)
	assert.Equal(t, math.Sqrt2, long[0].Death)
	assert.Equal(t, 1, diag.Betti(1, 1.2))

	// The representative is the 4-edge boundary of the square.
	require.Len(t, long[0].Cycle, 4)
	degree := map[int]int{}
	for _, s := range long[0].Cycle {
		assert.Equal(t, 1, s.Dim())
		assert.Equal(t, 1.0, s.Value)
		for _, v := range s.Vertices {
			degree[v]++
		}
	}
	assert.Equal(t, map[int]int{0: 2, 1: 2, 2: 2, 3: 2}, degree)
}

// TestIntervals_Representatives checks that every cycle is closed (even
// vertex degrees for 1-cycles) and enters no later than its birth.
func TestIntervals_Representatives(t *testing.T) {
	diag, err := homology.Intervals(randomCloud(8, 25, 2), 1, 0.5, homology.WithRepresentatives())
	require.NoError(t, err)

	for _, iv := range diag {
		require.NotEmpty(t, iv.Cycle)
		for _, s := range iv.Cycle {
			assert.Equal(t, iv.Dim, s.Dim())
			assert.LessOrEqual(t, s.Value, iv.Birth)
		}
		if iv.Dim == 1 {
			degree := map[int]int{}
			for _, s := range iv.Cycle {
				degree[s.Vertices[0]]++
				degree[s.Vertices[1]]++
			}
			for v, deg := range degree {
				assert.Zero(t, deg%2, "vertex %d has odd degree in %v", v, iv)
			}
		}
	}
}

// TestIntervals_BirthBeforeDeath holds for every interval of random clouds.
func TestIntervals_BirthBeforeDeath(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		diag, err := homology.Intervals(randomCloud(seed, 30, 3), 2, 0.6)
		require.NoError(t, err)
		for _, iv := range diag {
			assert.LessOrEqual(t, iv.Birth, iv.Death, "%v", iv)
			assert.LessOrEqual(t, iv.Dim, 2)
		}
	}
}

// TestIntervals_H0MatchesSingleLinkage compares finite H0 deaths with
// single-linkage merge heights.
func TestIntervals_H0MatchesSingleLinkage(t *testing.T) {
	cloud := randomCloud(21, 40, 2)
	m, err := distance.Pairwise(cloud)
	require.NoError(t, err)

	diag, err := homology.IntervalsMatrix(m, 0, inf)
	require.NoError(t, err)

	var deaths []float64
	essential := 0
	for _, iv := range diag.Dim(0) {
		assert.Equal(t, 0.0, iv.Birth)
		if iv.IsEssential() {
			essential++
			continue
		}
		deaths = append(deaths, iv.Death)
	}
	sort.Float64s(deaths)

	assert.Equal(t, 1, essential)
	assert.Equal(t, homology.SingleLinkage(m), deaths)
	assert.Equal(t, []int{0}, diag.Dims())
}

// TestIntervals_MonotoneInMaxDist checks that a smaller threshold yields the
// larger threshold's diagram truncated at that threshold.
func TestIntervals_MonotoneInMaxDist(t *testing.T) {
	cloud := randomCloud(13, 30, 2)
	const small, large = 0.25, 0.5

	lo, err := homology.Intervals(cloud, 1, small)
	require.NoError(t, err)
	hi, err := homology.Intervals(cloud, 1, large)
	require.NoError(t, err)

	var want homology.Diagram
	for _, iv := range hi {
		if iv.Birth > small {
			continue
		}
		if iv.Death > small {
			iv.Death = homology.Infinity
		}
		want = append(want, iv)
	}
	assert.ElementsMatch(t, want, lo)
	assert.GreaterOrEqual(t, len(hi), len(lo))
}

func TestIntervals_Errors(t *testing.T) {
	cloud := randomCloud(1, 10, 2)

	_, err := homology.Intervals(cloud, -1, 1)
	assert.ErrorIs(t, err, homology.ErrInvalidMaxDim)
	assert.ErrorIs(t, err, tdaerr.ErrInvalidParameter)

	_, err = homology.Intervals(cloud, 1, -0.1)
	assert.ErrorIs(t, err, homology.ErrInvalidMaxDist)

	_, err = homology.Intervals(cloud, 1, inf, homology.WithMaxSimplices(20))
	assert.ErrorIs(t, err, rips.ErrTooManySimplices)
	assert.ErrorIs(t, err, tdaerr.ErrResourceExceeded)

	_, err = homology.Compute(nil)
	assert.ErrorIs(t, err, homology.ErrNilInput)
	_, err = homology.Intervals(nil, 0, 1)
	assert.ErrorIs(t, err, homology.ErrNilInput)

	assert.Panics(t, func() { homology.WithMaxSimplices(0) })
}

func TestBoundaryMatrix(t *testing.T) {
	f, err := rips.BuildFromCloud(pointcloud.MustNew([][]float64{{0, 0}, {1, 0}, {1, 2}}), 2, inf)
	require.NoError(t, err)
	b := homology.BoundaryMatrix(f)

	// order: [0] [1] [2] [0 1] [1 2] [0 2] [0 1 2]
	require.Len(t, b, 7)
	col := func(j int) []uint8 {
		out := make([]uint8, len(b))
		for i := range b {
			out[i] = b[i][j]
		}
		return out
	}
	assert.Equal(t, []uint8{1, 1, 0, 0, 0, 0, 0}, col(3))
	assert.Equal(t, []uint8{1, 0, 1, 0, 0, 0, 0}, col(5))
	assert.Equal(t, []uint8{0, 0, 0, 1, 1, 1, 0}, col(6))
	assert.Equal(t, []uint8{0, 0, 0, 0, 0, 0, 0}, col(0))
}

func TestInterval_String(t *testing.T) {
	assert.Equal(t, "H1 [2, 5)", homology.Interval{Dim: 1, Birth: 2, Death: 5}.String())
	assert.Equal(t, "H0 [0, +Inf)", homology.Interval{Death: homology.Infinity}.String())
}

func TestCompute_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := homology.Intervals(randomCloud(2, 8, 2), 1, inf, homology.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("rips filtration built").Len())
	entries := logs.FilterMessage("persistence computed").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 8+28+56, entries[0].ContextMap()["simplices"])
}
