package lights

import (
	"fmt"

	"github.com/joegreene/go-raytracer/pkg/core"
)

// Light is the base light source: a color and a positive intensity.
// Contributions from multiple lights are summed by the shader.
type Light struct {
	Color     core.Color
	Intensity float64
}

// NewLight creates a light, validating color and intensity
func NewLight(color core.Color, intensity float64) (Light, error) {
	if !color.IsValid() {
		return Light{}, fmt.Errorf("light color %+v out of range: %w", color, core.ErrInvalidColor)
	}
	if intensity <= 0 {
		return Light{}, fmt.Errorf("light intensity must be positive, got %g: %w", intensity, core.ErrInvalidGeometry)
	}
	return Light{Color: color, Intensity: intensity}, nil
}

// AmbientLight contributes uniformly to every shaded point, independent of
// position and distance. It keeps fully shadowed surfaces from going black.
type AmbientLight struct {
	Light
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(color core.Color, intensity float64) (AmbientLight, error) {
	light, err := NewLight(color, intensity)
	if err != nil {
		return AmbientLight{}, err
	}
	return AmbientLight{Light: light}, nil
}

// PointLight adds a location to the base light. Its contribution falls off
// with the square of the distance to the shaded point.
type PointLight struct {
	Light
	Location core.Vec4
}

// NewPointLight creates a point light, validating the location tag
func NewPointLight(color core.Color, intensity float64, location core.Vec4) (*PointLight, error) {
	light, err := NewLight(color, intensity)
	if err != nil {
		return nil, err
	}
	if !location.IsPoint() {
		return nil, fmt.Errorf("point light location must be a point (w=1), got w=%g: %w", location.W, core.ErrCoordinateTag)
	}
	return &PointLight{Light: light, Location: location}, nil
}
