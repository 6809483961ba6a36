// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtda/rips"
)

// Infinity is the Death of a class that never dies.
var Infinity = math.Inf(1)

// Interval is one persistence pair: a homology class of dimension Dim
// alive on [Birth, Death).
type Interval struct {
	Dim   int
	Birth float64
	Death float64

	// Cycle is a representative cycle present at Birth, as a set of
	// Dim-simplices. Only populated with WithRepresentatives.
	Cycle []rips.Simplex
}

// IsEssential reports whether the class never dies.
func (iv Interval) IsEssential() bool { return math.IsInf(iv.Death, 1) }

// Persistence returns Death - Birth (+Inf for essential classes).
func (iv Interval) Persistence() float64 { return iv.Death - iv.Birth }

// String renders the interval as "H<dim> [birth, death)".
func (iv Interval) String() string {
	return fmt.Sprintf("H%d [%g, %g)", iv.Dim, iv.Birth, iv.Death)
}

// Diagram is a persistence diagram sorted by (Dim, Birth, Death).
type Diagram []Interval

// sortDiagram orders d by (Dim, Birth, Death). Ties keep their relative
// order, which follows the filtration.
func sortDiagram(d Diagram) {
	sort.SliceStable(d, func(a, b int) bool {
		x, y := d[a], d[b]
		if x.Dim != y.Dim {
			return x.Dim < y.Dim
		}
		if x.Birth != y.Birth {
			return x.Birth < y.Birth
		}

		return x.Death < y.Death
	})
}

// Dim returns the intervals of dimension k, in diagram order.
func (d Diagram) Dim(k int) Diagram {
	var out Diagram
	for _, iv := range d {
		if iv.Dim == k {
			out = append(out, iv)
		}
	}

	return out
}

// Dims returns the distinct dimensions present, ascending.
func (d Diagram) Dims() []int {
	var out []int
	for _, iv := range d {
		if len(out) == 0 || out[len(out)-1] != iv.Dim {
			out = append(out, iv.Dim)
		}
	}

	return out
}

// Pairs returns (birth, death) of every interval of dimension k.
func (d Diagram) Pairs(k int) [][2]float64 {
	var out [][2]float64
	for _, iv := range d {
		if iv.Dim == k {
			out = append(out, [2]float64{iv.Birth, iv.Death})
		}
	}

	return out
}

// Betti returns the number of classes of dimension k alive at value t,
// i.e. intervals with Birth ≤ t < Death.
func (d Diagram) Betti(k int, t float64) int {
	n := 0
	for _, iv := range d {
		if iv.Dim == k && iv.Birth <= t && t < iv.Death {
			n++
		}
	}

	return n
}
