// SPDX-License-Identifier: MIT

package distance

import (
	"math"
	"strconv"
	"strings"
)

// Matrix is a symmetric n×n distance table with a zero diagonal.
// data holds n*n values in row-major order.
type Matrix struct {
	n    int
	data []float64
}

// newMatrix allocates an n×n zero matrix. n must be positive.
func newMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// N returns the number of points the matrix covers.
// Complexity: O(1).
func (m *Matrix) N() int { return m.n }

// At returns the distance between points i and j without bounds checking
// beyond the runtime's own slice check. Use Get for a checked read.
// Complexity: O(1).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Get returns the distance between i and j, or ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Matrix) Get(i, j int) (float64, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// indexOf computes the flat index for (i, j).
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, matrixErrorf("At", i, j, ErrIndexOutOfBounds)
	}

	return i*m.n + j, nil
}

// setPair writes d into both (i, j) and (j, i).
func (m *Matrix) setPair(i, j int, d float64) {
	m.data[i*m.n+j] = d
	m.data[j*m.n+i] = d
}

// Row returns a read-only view of row i. Callers must not modify it.
// Complexity: O(1).
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// Rows returns a deep copy of the matrix as [][]float64.
// Complexity: O(n²).
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		row := make([]float64, m.n)
		copy(row, m.Row(i))
		out[i] = row
	}

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{n: m.n, data: data}
}

// Max returns the largest entry (the diameter of the point cloud).
// A 1×1 matrix has diameter 0.
// Complexity: O(n²).
func (m *Matrix) Max() float64 {
	best := 0.0
	for _, v := range m.data {
		best = math.Max(best, v)
	}

	return best
}

// Submatrix returns the distances restricted to indices, in the given order.
// Entry (a, b) of the result is m.At(indices[a], indices[b]).
//
// Errors: ErrIndexOutOfBounds on a bad index; tdaerr.ErrShape if indices is empty.
// Complexity: O(k²) for k = len(indices).
func (m *Matrix) Submatrix(indices []int) (*Matrix, error) {
	// Validate indices
	if len(indices) == 0 {
		return nil, ErrNotSquare
	}
	for _, idx := range indices {
		if idx < 0 || idx >= m.n {
			return nil, matrixErrorf("Submatrix", idx, idx, ErrIndexOutOfBounds)
		}
	}
	// Gather rows
	k := len(indices)
	sub := newMatrix(k)
	for a, i := range indices {
		row := m.Row(i)
		for b, j := range indices {
			sub.data[a*k+b] = row[j]
		}
	}

	return sub, nil
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(n²).
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteByte('[')
		for j, v := range m.Row(i) {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
