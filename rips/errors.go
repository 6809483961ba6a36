// SPDX-License-Identifier: MIT

package rips

import "github.com/katalvlaran/lvtda/tdaerr"

var (
	// ErrInvalidMaxDim indicates maxDim < 0.
	ErrInvalidMaxDim = tdaerr.Kind(tdaerr.ErrInvalidParameter, "rips: maxDim must be >= 0")

	// ErrInvalidMaxDist indicates a negative or NaN maxDist.
	ErrInvalidMaxDist = tdaerr.Kind(tdaerr.ErrInvalidParameter, "rips: maxDist must be non-negative")

	// ErrNilInput indicates a nil matrix or cloud.
	ErrNilInput = tdaerr.Kind(tdaerr.ErrInvalidParameter, "rips: input is nil")

	// ErrTooManySimplices indicates the filtration would exceed the simplex budget.
	ErrTooManySimplices = tdaerr.Kind(tdaerr.ErrResourceExceeded, "rips: simplex budget exceeded")

	// ErrInvalidComplex indicates explicit simplices that do not form a
	// filtered simplicial complex.
	ErrInvalidComplex = tdaerr.Kind(tdaerr.ErrInvalidParameter, "rips: invalid simplicial complex")
)
