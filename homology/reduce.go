// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvtda/rips"
	"go.uber.org/zap"
)

// addColumns returns the mod-2 sum of two ascending index sets.
func addColumns(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default: // 1 + 1 = 0
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

// reduction is the result of reducing a filtration's boundary matrix.
type reduction struct {
	cols    [][]int // reduced columns R
	chains  [][]int // V columns, only with representatives
	pivotOf []int   // pivotOf[i] = j when low(R_j) = i, else -1
}

// reduce runs the standard algorithm on f.
func reduce(f *rips.Filtration, withChains bool) *reduction {
	n := f.Len()
	r := &reduction{cols: make([][]int, n), pivotOf: make([]int, n)}
	if withChains {
		r.chains = make([][]int, n)
	}
	for i := range r.pivotOf {
		r.pivotOf[i] = -1
	}

	for j := 0; j < n; j++ {
		// Clear the low of column j against earlier pivots until it is
		// new or the column is zero.
		col := f.Boundary(j)
		var chain []int
		if withChains {
			chain = []int{j}
		}
		for len(col) > 0 {
			k := r.pivotOf[col[len(col)-1]]
			if k < 0 {
				break
			}
			col = addColumns(col, r.cols[k])
			if withChains {
				chain = addColumns(chain, r.chains[k])
			}
		}
		if len(col) > 0 {
			r.pivotOf[col[len(col)-1]] = j
		}
		r.cols[j] = col
		if withChains {
			r.chains[j] = chain
		}
	}

	return r
}

// Compute returns the persistence diagram of f in every dimension present.
//
// Stage 1 (Reduce): standard mod-2 column reduction.
// Stage 2 (Pair): each non-zero column j with low i yields
// [value(i), value(j)) in dimension dim(i).
// Stage 3 (Essential): zero columns never used as a low yield
// [value(i), Infinity).
// Stage 4 (Finalize): sort by (Dim, Birth, Death) and report.
func Compute(f *rips.Filtration, opts ...Option) (Diagram, error) {
	if f == nil {
		return nil, fmt.Errorf("Compute: %w", ErrNilInput)
	}

	return compute(f, -1, gatherOptions(opts)), nil
}

// compute reduces f and keeps dimensions ≤ maxDim (all when maxDim < 0).
func compute(f *rips.Filtration, maxDim int, o options) Diagram {
	// Stage 1: reduce.
	start := time.Now()
	r := reduce(f, o.representatives)
	elapsed := time.Since(start)

	keep := func(dim int) bool { return maxDim < 0 || dim <= maxDim }
	// Stage 2: finite pairs.
	var diag Diagram
	paired := make([]bool, f.Len())
	for j, col := range r.cols {
		if len(col) == 0 {
			continue
		}
		i := col[len(col)-1]
		paired[i] = true
		birth := f.At(i)
		if !keep(birth.Dim()) {
			continue
		}
		diag = append(diag, r.interval(f, i, f.At(j).Value))
	}
	// Stage 3: essential classes.
	for i, col := range r.cols {
		if len(col) != 0 || paired[i] || !keep(f.At(i).Dim()) {
			continue
		}
		diag = append(diag, r.interval(f, i, Infinity))
	}
	// Stage 4: order and report.
	sortDiagram(diag)

	counts := make(map[int]int)
	for _, iv := range diag {
		counts[iv.Dim]++
	}
	for _, dim := range diag.Dims() {
		o.recorder.ObserveIntervals(dim, counts[dim])
	}
	o.recorder.ObserveReduction(elapsed)
	o.logger.Debug("persistence computed",
		zap.Int("simplices", f.Len()),
		zap.Int("intervals", len(diag)),
		zap.Duration("reduction", elapsed),
	)

	return diag
}

// interval builds the interval born at simplex i.
func (r *reduction) interval(f *rips.Filtration, i int, death float64) Interval {
	birth := f.At(i)
	iv := Interval{Dim: birth.Dim(), Birth: birth.Value, Death: death}
	if r.chains != nil {
		for _, k := range r.chains[i] {
			iv.Cycle = append(iv.Cycle, f.At(k))
		}
	}

	return iv
}

// BoundaryMatrix returns the dense 0/1 boundary matrix of f: entry [i][j] is
// 1 when simplex i is a codimension-1 face of simplex j. Intended for
// inspection of small complexes.
// Complexity: O(S²) memory.
func BoundaryMatrix(f *rips.Filtration) [][]uint8 {
	n := f.Len()
	out := make([][]uint8, n)
	for i := range out {
		out[i] = make([]uint8, n)
	}
	for j := 0; j < n; j++ {
		for _, i := range f.Boundary(j) {
			out[i][j] = 1
		}
	}

	return out
}
