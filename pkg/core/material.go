package core

import "fmt"

// Material holds the surface colors used by the shader. Shininess is the
// Blinn-Phong exponent; zero disables the specular term.
type Material struct {
	DiffuseColor  Color
	SpecularColor Color
	Shininess     float64
}

// NewMaterial creates a material, validating both colors
func NewMaterial(diffuse, specular Color, shininess float64) (Material, error) {
	if !diffuse.IsValid() {
		return Material{}, fmt.Errorf("diffuse color %+v out of range: %w", diffuse, ErrInvalidColor)
	}
	if !specular.IsValid() {
		return Material{}, fmt.Errorf("specular color %+v out of range: %w", specular, ErrInvalidColor)
	}
	if shininess < 0 {
		return Material{}, fmt.Errorf("shininess must be non-negative, got %g: %w", shininess, ErrInvalidGeometry)
	}
	return Material{DiffuseColor: diffuse, SpecularColor: specular, Shininess: shininess}, nil
}
