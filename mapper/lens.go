// SPDX-License-Identifier: MIT

package mapper

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/pointcloud"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Lens maps every point of a cloud to a real value. m holds the cloud's
// pairwise distances for lenses that need them.
type Lens interface {
	Values(cloud *pointcloud.Cloud, m *distance.Matrix) ([]float64, error)
}

// LensFunc adapts a plain function to Lens.
type LensFunc func(cloud *pointcloud.Cloud, m *distance.Matrix) ([]float64, error)

// Values calls f.
func (f LensFunc) Values(cloud *pointcloud.Cloud, m *distance.Matrix) ([]float64, error) {
	return f(cloud, m)
}

// Coordinate projects every point onto axis k.
func Coordinate(k int) Lens {
	return LensFunc(func(cloud *pointcloud.Cloud, _ *distance.Matrix) ([]float64, error) {
		if k < 0 || k >= cloud.Dim() {
			return nil, fmt.Errorf("Coordinate(%d) on %d-dimensional cloud: %w", k, cloud.Dim(), ErrInvalidLens)
		}
		return cloud.Column(k), nil
	})
}

// Projection returns the dot product of every point with direction.
func Projection(direction []float64) Lens {
	dir := append([]float64(nil), direction...)
	return LensFunc(func(cloud *pointcloud.Cloud, _ *distance.Matrix) ([]float64, error) {
		if len(dir) != cloud.Dim() {
			return nil, fmt.Errorf("Projection: direction has %d components, cloud has dimension %d: %w",
				len(dir), cloud.Dim(), ErrInvalidLens)
		}
		out := make([]float64, cloud.Len())
		for i := range out {
			out[i] = floats.Dot(cloud.Point(i), dir)
		}
		return out, nil
	})
}

// PCA projects the centred cloud onto its first principal component. The
// component's sign is fixed so that its largest-magnitude entry is positive.
func PCA() Lens {
	return LensFunc(func(cloud *pointcloud.Cloud, _ *distance.Matrix) ([]float64, error) {
		n, d := cloud.Len(), cloud.Dim()
		raw := make([]float64, 0, n*d)
		for i := 0; i < n; i++ {
			raw = append(raw, cloud.Point(i)...)
		}
		x := mat.NewDense(n, d, raw)

		var pc stat.PC
		if !pc.PrincipalComponents(x, nil) {
			return nil, fmt.Errorf("PCA: decomposition failed: %w", ErrInvalidLens)
		}
		var vecs mat.Dense
		pc.VectorsTo(&vecs)
		axis := mat.Col(nil, 0, &vecs)
		if axis[floats.MaxIdx(absAll(axis))] < 0 {
			floats.Scale(-1, axis)
		}

		means := make([]float64, d)
		for k := range means {
			means[k] = stat.Mean(cloud.Column(k), nil)
		}
		out := make([]float64, n)
		centred := make([]float64, d)
		for i := range out {
			floats.SubTo(centred, cloud.Point(i), means)
			out[i] = floats.Dot(centred, axis)
		}
		return out, nil
	})
}

func absAll(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Abs(x)
	}

	return out
}

// Eccentricity maps every point to its mean distance to all points.
func Eccentricity() Lens {
	return LensFunc(func(_ *pointcloud.Cloud, m *distance.Matrix) ([]float64, error) {
		out := make([]float64, m.N())
		for i := range out {
			out[i] = stat.Mean(m.Row(i), nil)
		}
		return out, nil
	})
}
