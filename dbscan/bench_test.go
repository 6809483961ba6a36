package dbscan_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtda/dbscan"
	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/pointcloud"
)

func BenchmarkClusterMatrix_2000(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	pts := make([][]float64, 2000)
	for i := range pts {
		pts[i] = []float64{rng.NormFloat64(), rng.NormFloat64()}
	}
	m, err := distance.Pairwise(pointcloud.MustNew(pts))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dbscan.ClusterMatrix(m, 0.1, 5)
	}
}
