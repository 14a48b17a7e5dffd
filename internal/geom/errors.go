package geom

import "errors"

// Domain errors for geometry operations. All inputs are fixed-length
// numeric sequences, so the only failure class is a caller passing
// mismatched dimensions; such calls are rejected whole rather than
// truncated or padded.
var (
	// ErrAngleCount indicates an angle slice whose length does not
	// match the plane count of the requested rotation.
	ErrAngleCount = errors.New("geom: angle count does not match plane count")

	// ErrPlaneRange indicates a rotation plane referencing an axis
	// outside [0, n).
	ErrPlaneRange = errors.New("geom: rotation plane axis out of range")

	// ErrDimensionMismatch indicates a point whose length does not
	// match the matrix it is applied to.
	ErrDimensionMismatch = errors.New("geom: point dimension does not match matrix")
)
