package core

import "fmt"

// Ray represents a viewing ray with a point origin and a direction. The
// direction need not be normalized; consumers fold its length into their
// own math.
type Ray struct {
	Origin    Vec4
	Direction Vec4
}

// NewRay creates a ray, rejecting mis-tagged components
func NewRay(origin, direction Vec4) (Ray, error) {
	if !origin.IsPoint() {
		return Ray{}, fmt.Errorf("ray origin must be a point (w=1), got w=%g: %w", origin.W, ErrCoordinateTag)
	}
	if !direction.IsDirection() {
		return Ray{}, fmt.Errorf("ray direction must be a direction (w=0), got w=%g: %w", direction.W, ErrCoordinateTag)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec4 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
