package curve

import "errors"

var (
	// ErrCurveMismatch is the panic value when finite points bound to different curves are combined.
	ErrCurveMismatch = errors.New("points are bound to different curves")

	// ErrNegativeScalar is the panic value of ScalarMult for k < 0.
	ErrNegativeScalar = errors.New("scalar must not be negative")

	// ErrInfinityCoordinates is the panic value when setting a coordinate of the point at infinity.
	ErrInfinityCoordinates = errors.New("the point at infinity has no coordinates")

	ErrNotOnCurve    = errors.New("point is not on the curve")
	ErrInvalidParams = errors.New("invalid curve parameters")
	ErrUnknownCurve  = errors.New("unknown curve")
	ErrNotInvertible = errors.New("non-invertible denominator")
)
