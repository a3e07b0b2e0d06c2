package core

import "errors"

// Construction-time invariant violations. Constructors wrap these with
// fmt.Errorf("...: %w", Err...) so callers can classify failures with
// errors.Is while still seeing the offending values.
var (
	// ErrInvalidColor reports a color channel or intensity outside [0, 1]
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidGeometry reports a degenerate geometric quantity such as a
	// non-positive radius, viewport bounds out of order, or a non-positive
	// projection distance
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrCoordinateTag reports a point supplied where a direction was
	// required, or vice versa
	ErrCoordinateTag = errors.New("homogeneous coordinate tag mismatch")
)
