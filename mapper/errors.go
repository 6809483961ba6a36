package mapper

import "github.com/katalvlaran/lvtda/tdaerr"

var (
	// ErrInvalidResolution indicates resolution < 1.
	ErrInvalidResolution = tdaerr.Kind(tdaerr.ErrInvalidParameter, "mapper: resolution must be >= 1")

	// ErrInvalidOverlap indicates overlap outside the open interval (0, 1).
	ErrInvalidOverlap = tdaerr.Kind(tdaerr.ErrInvalidParameter, "mapper: overlap must be in (0, 1)")

	// ErrInvalidMinPoints indicates minPoints < 1.
	ErrInvalidMinPoints = tdaerr.Kind(tdaerr.ErrInvalidParameter, "mapper: minPoints must be >= 1")

	// ErrInvalidRange indicates a cover range with min > max or non-finite bounds.
	ErrInvalidRange = tdaerr.Kind(tdaerr.ErrInvalidParameter, "mapper: cover range must be finite with min <= max")

	// ErrInvalidLens indicates a lens that cannot be evaluated on the cloud,
	// such as a coordinate index beyond its dimension.
	ErrInvalidLens = tdaerr.Kind(tdaerr.ErrInvalidParameter, "mapper: lens does not apply to this cloud")

	// ErrLensValues indicates a lens that returned the wrong number of values
	// or a non-finite value.
	ErrLensValues = tdaerr.Kind(tdaerr.ErrShape, "mapper: lens must return one finite value per point")

	// ErrNilInput indicates a nil cloud.
	ErrNilInput = tdaerr.Kind(tdaerr.ErrInvalidParameter, "mapper: input is nil")
)
