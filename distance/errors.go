// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/lvtda/tdaerr"
)

var (
	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = tdaerr.Kind(tdaerr.ErrInvalidParameter, "distance: index out of bounds")

	// ErrNotSquare indicates a raw table whose rows are not all of length n.
	ErrNotSquare = tdaerr.Kind(tdaerr.ErrShape, "distance: matrix must be square")

	// ErrAsymmetric indicates |m[i][j] - m[j][i]| above the tolerance.
	ErrAsymmetric = tdaerr.Kind(tdaerr.ErrShape, "distance: matrix must be symmetric")

	// ErrNonZeroDiagonal indicates a diagonal entry other than zero.
	ErrNonZeroDiagonal = tdaerr.Kind(tdaerr.ErrShape, "distance: diagonal must be zero")

	// ErrInvalidDistance indicates a negative or non-finite entry.
	ErrInvalidDistance = tdaerr.Kind(tdaerr.ErrShape, "distance: entries must be finite and non-negative")
)

// matrixErrorf wraps err with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
