// SPDX-License-Identifier: MIT

package rips

import (
	"fmt"
	"math"
	"sort"
)

// Filtration is an immutable, totally ordered list of simplices in which
// every face of a simplex appears before it.
type Filtration struct {
	simplices []Simplex
	index     map[string]int
	maxDim    int
}

// newFiltration sorts simplices into filtration order and indexes them.
// Callers guarantee closure.
func newFiltration(simplices []Simplex) *Filtration {
	sort.Slice(simplices, func(a, b int) bool { return less(simplices[a], simplices[b]) })
	f := &Filtration{
		simplices: simplices,
		index:     make(map[string]int, len(simplices)),
	}
	for i, s := range simplices {
		f.index[keyOf(s.Vertices)] = i
		if s.Dim() > f.maxDim {
			f.maxDim = s.Dim()
		}
	}

	return f
}

// New builds a Filtration from explicit simplices and their values.
//
// Stage 1 (Validate): each simplex is non-empty, its vertices are
// non-negative and strictly ascending, its value is finite, and no simplex
// is listed twice.
// Stage 2 (Closure): every codimension-1 face is listed with a value no
// larger than the simplex's own. Checking codimension 1 for every simplex
// covers all faces by induction.
// Stage 3 (Finalize): sort into filtration order.
//
// Errors: ErrInvalidComplex (tdaerr.ErrInvalidParameter) naming the offender.
// Complexity: O(S·k log S) for S simplices of at most k vertices.
func New(simplices []Simplex) (*Filtration, error) {
	own := make([]Simplex, len(simplices))
	values := make(map[string]float64, len(simplices))
	for i, s := range simplices {
		if len(s.Vertices) == 0 {
			return nil, fmt.Errorf("New: simplex %d is empty: %w", i, ErrInvalidComplex)
		}
		for j, v := range s.Vertices {
			if v < 0 || (j > 0 && v <= s.Vertices[j-1]) {
				return nil, fmt.Errorf("New: simplex %v: vertices must be non-negative and strictly ascending: %w", s.Vertices, ErrInvalidComplex)
			}
		}
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
			return nil, fmt.Errorf("New: simplex %v: value must be finite: %w", s.Vertices, ErrInvalidComplex)
		}
		key := keyOf(s.Vertices)
		if _, dup := values[key]; dup {
			return nil, fmt.Errorf("New: simplex %v listed twice: %w", s.Vertices, ErrInvalidComplex)
		}
		values[key] = s.Value
		verts := make([]int, len(s.Vertices))
		copy(verts, s.Vertices)
		own[i] = Simplex{Vertices: verts, Value: s.Value}
	}

	for _, s := range own {
		k := len(s.Vertices)
		if k == 1 {
			continue
		}
		for _, pos := range Combinations(k, k-1) {
			face := make([]int, k-1)
			for a, p := range pos {
				face[a] = s.Vertices[p]
			}
			v, ok := values[keyOf(face)]
			if !ok {
				return nil, fmt.Errorf("New: simplex %v: face %v missing: %w", s.Vertices, face, ErrInvalidComplex)
			}
			if v > s.Value {
				return nil, fmt.Errorf("New: simplex %v enters at %g before its face %v at %g: %w",
					s.Vertices, s.Value, face, v, ErrInvalidComplex)
			}
		}
	}

	return newFiltration(own), nil
}

// Len returns the number of simplices.
func (f *Filtration) Len() int { return len(f.simplices) }

// MaxDim returns the largest simplex dimension present (0 if only vertices).
func (f *Filtration) MaxDim() int { return f.maxDim }

// At returns the i-th simplex in filtration order. The Vertices slice is
// shared and must not be modified.
func (f *Filtration) At(i int) Simplex { return f.simplices[i] }

// Simplices returns a deep copy of all simplices in filtration order.
func (f *Filtration) Simplices() []Simplex {
	out := make([]Simplex, len(f.simplices))
	for i, s := range f.simplices {
		verts := make([]int, len(s.Vertices))
		copy(verts, s.Vertices)
		out[i] = Simplex{Vertices: verts, Value: s.Value}
	}

	return out
}

// Index returns the filtration position of the simplex with the given
// (ascending) vertices.
func (f *Filtration) Index(vertices []int) (int, bool) {
	i, ok := f.index[keyOf(vertices)]

	return i, ok
}

// Boundary returns the filtration positions of the codimension-1 faces of
// simplex i, ascending. Vertices have an empty boundary.
// Complexity: O(k log k) for a simplex of k vertices.
func (f *Filtration) Boundary(i int) []int {
	verts := f.simplices[i].Vertices
	if len(verts) < 2 {
		return nil
	}
	col := make([]int, 0, len(verts))
	for skip := range verts {
		j, ok := f.index[keyOf(faceWithout(verts, skip))]
		if !ok {
			// unreachable: closure is established at construction
			panic(fmt.Sprintf("rips: face of %v missing from filtration", verts))
		}
		col = append(col, j)
	}
	sort.Ints(col)

	return col
}

// CountByDim returns the number of simplices per dimension, index = dimension.
func (f *Filtration) CountByDim() []int {
	out := make([]int, f.maxDim+1)
	for _, s := range f.simplices {
		out[s.Dim()]++
	}

	return out
}
