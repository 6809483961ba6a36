package homology

import "github.com/katalvlaran/lvtda/tdaerr"

var (
	// ErrInvalidMaxDim indicates maxDim < 0.
	ErrInvalidMaxDim = tdaerr.Kind(tdaerr.ErrInvalidParameter, "homology: maxDim must be >= 0")

	// ErrInvalidMaxDist indicates a negative or NaN maxDist.
	ErrInvalidMaxDist = tdaerr.Kind(tdaerr.ErrInvalidParameter, "homology: maxDist must be non-negative")

	// ErrNilInput indicates a nil filtration, matrix or cloud.
	ErrNilInput = tdaerr.Kind(tdaerr.ErrInvalidParameter, "homology: input is nil")
)
