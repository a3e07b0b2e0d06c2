package geometry

import "github.com/joegreene/go-raytracer/pkg/core"

// Epsilon is the minimum intersection parameter. Roots below it are
// rejected so that feeler rays do not re-hit the surface they left and
// surfaces behind the ray origin stay invisible.
const Epsilon = 1e-9

// Intersection records where a viewing ray meets a surface. Point is a
// homogeneous point, Normal a unit homogeneous direction, and T the ray
// parameter of the hit (always >= Epsilon). Intersections are created
// fresh per test and consumed immediately by the render loop.
type Intersection struct {
	Point  core.Vec4
	Normal core.Vec4
	T      float64
}
