package geometry

import (
	"fmt"
	"math"

	"github.com/joegreene/go-raytracer/pkg/core"
)

// Sphere is a sphere surface with a center point and positive radius
type Sphere struct {
	Center   core.Vec4
	Radius   float64
	material core.Material
}

// NewSphere creates a sphere, validating the center tag and radius
func NewSphere(center core.Vec4, radius float64, material core.Material) (*Sphere, error) {
	if !center.IsPoint() {
		return nil, fmt.Errorf("sphere center must be a point (w=1), got w=%g: %w", center.W, core.ErrCoordinateTag)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g: %w", radius, core.ErrInvalidGeometry)
	}
	return &Sphere{Center: center, Radius: radius, material: material}, nil
}

// Material returns the sphere's surface material
func (s *Sphere) Material() core.Material {
	return s.material
}

// Intersect tests the ray against the sphere. Substituting the ray
// equation into |p - center|^2 = r^2 gives the quadratic
// at^2 + bt + c = 0; the smallest root at or beyond Epsilon wins.
func (s *Sphere) Intersect(ray core.Ray) (*Intersection, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}

	// A tangent ray (zero discriminant) yields two equal roots and counts
	// as a single valid hit.
	sqrtD := math.Sqrt(discriminant)
	t := (-b - sqrtD) / (2 * a)
	if t < Epsilon {
		t = (-b + sqrtD) / (2 * a)
		if t < Epsilon {
			// Both roots behind the origin: sphere is behind the ray.
			return nil, false
		}
	}

	point := ray.At(t)
	normal := point.Subtract(s.Center).Normalize()

	return &Intersection{Point: point, Normal: normal, T: t}, true
}
