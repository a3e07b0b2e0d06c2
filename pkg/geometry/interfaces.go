package geometry

import "github.com/joegreene/go-raytracer/pkg/core"

// Surface is implemented by anything a viewing ray can hit. Intersect
// returns the nearest valid intersection along the ray, or false for a
// miss. New primitives add their own root finding behind this contract;
// the render loop never changes.
type Surface interface {
	Intersect(ray core.Ray) (*Intersection, bool)
	Material() core.Material
}
