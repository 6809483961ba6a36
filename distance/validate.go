// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
)

// ValidateSymmetric checks the distance matrix invariants within eps:
// every entry finite and non-negative, m[i][i] == 0, m[i][j] == m[j][i].
//
// Returns the first violation found in row-major order, or nil.
// Complexity: O(n²).
func ValidateSymmetric(m *Matrix, eps float64) error {
	for i := 0; i < m.n; i++ {
		row := m.Row(i)
		if math.Abs(row[i]) > eps {
			return matrixErrorf("ValidateSymmetric", i, i, ErrNonZeroDiagonal)
		}
		for j := i + 1; j < m.n; j++ {
			a, b := row[j], m.At(j, i)
			if !validEntry(a) || !validEntry(b) {
				return matrixErrorf("ValidateSymmetric", i, j, ErrInvalidDistance)
			}
			if math.Abs(a-b) > eps {
				return matrixErrorf("ValidateSymmetric", i, j, ErrAsymmetric)
			}
		}
	}

	return nil
}

func validEntry(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// FromRows builds a Matrix from a precomputed distance table, for callers that
// already hold distances (or want a non-Euclidean fixture in tests).
//
// Stage 1 (Validate): non-empty, square.
// Stage 2 (Copy): flatten into a private matrix.
// Stage 3 (Check): ValidateSymmetric with the WithEpsilon tolerance.
//
// Errors: ErrNotSquare, ErrNonZeroDiagonal, ErrInvalidDistance, ErrAsymmetric,
// all matching tdaerr.ErrShape.
// Complexity: O(n²).
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts)
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: empty table: %w", ErrNotSquare)
	}
	m := newMatrix(n)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(r), n, ErrNotSquare)
		}
		copy(m.data[i*n:(i+1)*n], r)
	}
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	return m, nil
}
