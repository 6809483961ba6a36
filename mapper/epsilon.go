package mapper

import (
	"math"

	"github.com/katalvlaran/lvtda/distance"
	"github.com/katalvlaran/lvtda/neighborhood"
)

// DefaultNeighborFactor scales the median nearest-neighbor distance in the
// default epsilon strategy.
const DefaultNeighborFactor = 1.5

// EpsilonStrategy chooses the DBSCAN radius for the points of one cover
// interval, given their distance matrix.
type EpsilonStrategy interface {
	Epsilon(m *distance.Matrix) float64
}

// EpsilonFunc adapts a plain function to EpsilonStrategy.
type EpsilonFunc func(m *distance.Matrix) float64

// Epsilon calls f.
func (f EpsilonFunc) Epsilon(m *distance.Matrix) float64 { return f(m) }

// MedianNeighbor returns factor × the median nearest-neighbor distance of
// the interval's points, or 0 for a single point. Panics if factor is not
// a positive finite number.
func MedianNeighbor(factor float64) EpsilonStrategy {
	if !(factor > 0) || math.IsInf(factor, 0) {
		panic("mapper: MedianNeighbor: factor must be positive and finite")
	}

	return EpsilonFunc(func(m *distance.Matrix) float64 {
		if m.N() < 2 {
			return 0
		}
		return factor * neighborhood.MedianNearest(m)
	})
}

// FixedEpsilon uses eps for every interval. Panics if eps is negative or NaN.
func FixedEpsilon(eps float64) EpsilonStrategy {
	if eps < 0 || math.IsNaN(eps) {
		panic("mapper: FixedEpsilon: eps must be non-negative")
	}

	return EpsilonFunc(func(*distance.Matrix) float64 { return eps })
}
