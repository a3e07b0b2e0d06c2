package renderer

import (
	"fmt"

	"github.com/joegreene/go-raytracer/pkg/core"
)

// CameraConfig holds the camera parameters: a viewpoint, an orientation,
// a viewport rectangle on the viewing plane, and the distance to that
// plane. The viewport bounds straddle the gaze axis (Left < 0 < Right,
// Bottom < 0 < Top).
type CameraConfig struct {
	Location    core.Vec4 // Eye point
	Gaze        core.Vec4 // Viewing direction (need not be normalized)
	Up          core.Vec4 // Approximate up direction
	Left        float64
	Right       float64
	Bottom      float64
	Top         float64
	Distance    float64 // Distance from the eye to the viewing plane
	Perspective bool    // Perspective projection when true, orthographic otherwise
}

// Camera converts pixel coordinates into world-space viewing rays
type Camera struct {
	config  CameraConfig
	u, v, w core.Vec4 // Orthonormal basis: w opposes the gaze, u points right, v points up
}

// NewCamera creates a camera, validating tags, viewport bounds and the
// projection distance, and precomputing the orthonormal basis.
func NewCamera(config CameraConfig) (*Camera, error) {
	if !config.Location.IsPoint() {
		return nil, fmt.Errorf("camera location must be a point (w=1), got w=%g: %w", config.Location.W, core.ErrCoordinateTag)
	}
	if !config.Gaze.IsDirection() {
		return nil, fmt.Errorf("camera gaze must be a direction (w=0), got w=%g: %w", config.Gaze.W, core.ErrCoordinateTag)
	}
	if !config.Up.IsDirection() {
		return nil, fmt.Errorf("camera up must be a direction (w=0), got w=%g: %w", config.Up.W, core.ErrCoordinateTag)
	}
	if config.Left >= 0 || config.Right <= 0 {
		return nil, fmt.Errorf("viewport must satisfy left < 0 < right, got left=%g right=%g: %w", config.Left, config.Right, core.ErrInvalidGeometry)
	}
	if config.Bottom >= 0 || config.Top <= 0 {
		return nil, fmt.Errorf("viewport must satisfy bottom < 0 < top, got bottom=%g top=%g: %w", config.Bottom, config.Top, core.ErrInvalidGeometry)
	}
	if config.Distance <= 0 {
		return nil, fmt.Errorf("projection distance must be positive, got %g: %w", config.Distance, core.ErrInvalidGeometry)
	}
	if config.Gaze.Length() == 0 {
		return nil, fmt.Errorf("camera gaze must be non-zero: %w", core.ErrInvalidGeometry)
	}

	w := config.Gaze.Negate().Normalize()
	cross := config.Up.Cross(w)
	if cross.Length() == 0 {
		return nil, fmt.Errorf("camera up must not be parallel to the gaze: %w", core.ErrInvalidGeometry)
	}
	u := cross.Normalize()
	v := w.Cross(u)

	return &Camera{config: config, u: u, v: v, w: w}, nil
}

// GenerateRay returns the viewing ray through the center of pixel (i, j)
// for an image of the given resolution. Pixel rows increase upward in
// viewport space; the framebuffer shares that orientation.
func (c *Camera) GenerateRay(i, j, width, height int) core.Ray {
	su := c.config.Left + (c.config.Right-c.config.Left)*(float64(i)+0.5)/float64(width)
	sv := c.config.Bottom + (c.config.Top-c.config.Bottom)*(float64(j)+0.5)/float64(height)

	if c.config.Perspective {
		direction := c.w.Multiply(-c.config.Distance).
			Add(c.u.Multiply(su)).
			Add(c.v.Multiply(sv)).
			Normalize()
		return core.Ray{Origin: c.config.Location, Direction: direction}
	}

	// Orthographic: the origin slides across the viewport and every ray
	// shares the gaze direction.
	origin := c.config.Location.
		Add(c.u.Multiply(su)).
		Add(c.v.Multiply(sv))
	return core.Ray{Origin: origin, Direction: c.w.Negate()}
}
