package dbscan

import "github.com/katalvlaran/lvtda/tdaerr"

var (
	// ErrInvalidEpsilon indicates a negative or NaN epsilon.
	ErrInvalidEpsilon = tdaerr.Kind(tdaerr.ErrInvalidParameter, "dbscan: epsilon must be non-negative")

	// ErrInvalidMinPoints indicates minPoints < 1.
	ErrInvalidMinPoints = tdaerr.Kind(tdaerr.ErrInvalidParameter, "dbscan: minPoints must be >= 1")

	// ErrNilInput indicates a nil cloud or matrix.
	ErrNilInput = tdaerr.Kind(tdaerr.ErrInvalidParameter, "dbscan: input is nil")
)
