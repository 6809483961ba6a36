package pointcloud

import "github.com/katalvlaran/lvtda/tdaerr"

// Sentinel errors for point cloud construction. All match tdaerr.ErrShape
// except ErrSubsetIndex, which is a caller index mistake.
var (
	// ErrEmptyCloud indicates that no points were supplied.
	ErrEmptyCloud = tdaerr.Kind(tdaerr.ErrShape, "pointcloud: point cloud must contain at least one point")

	// ErrZeroDimension indicates points with no coordinates.
	ErrZeroDimension = tdaerr.Kind(tdaerr.ErrShape, "pointcloud: points must have at least one coordinate")

	// ErrRagged indicates points of differing dimensions.
	ErrRagged = tdaerr.Kind(tdaerr.ErrShape, "pointcloud: all points must have the same dimension")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = tdaerr.Kind(tdaerr.ErrShape, "pointcloud: coordinates must be finite")

	// ErrSubsetIndex indicates a subset index outside [0, n).
	ErrSubsetIndex = tdaerr.Kind(tdaerr.ErrInvalidParameter, "pointcloud: subset index out of range")
)
