package rips_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/pointcloud"
	"github.com/katalvlaran/lvtda/rips"
)

func BenchmarkBuild_200Points_Dim2(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	pts := make([][]float64, 200)
	for i := range pts {
		pts[i] = []float64{rng.Float64(), rng.Float64()}
	}
	m, err := distance.Pairwise(pointcloud.MustNew(pts))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rips.Build(m, 2, 0.15)
	}
}
