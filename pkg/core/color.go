package core

import "fmt"

// Color is an RGB color with each channel in [0, 1].
type Color struct {
	R, G, B float64
}

// NewColor creates a color, rejecting any channel outside [0, 1]
func NewColor(r, g, b float64) (Color, error) {
	c := Color{R: r, G: g, B: b}
	if !c.IsValid() {
		return Color{}, fmt.Errorf("color channels (%g, %g, %g) must be in [0, 1]: %w", r, g, b, ErrInvalidColor)
	}
	return c, nil
}

// NewWebColor converts a 24-bit web hex color (e.g. 0x4080FF) to a Color
func NewWebColor(hex uint32) (Color, error) {
	if hex > 0xFFFFFF {
		return Color{}, fmt.Errorf("web color %#x exceeds 24 bits: %w", hex, ErrInvalidColor)
	}
	return Color{
		R: float64(hex>>16) / 255.0,
		G: float64(hex>>8&0xFF) / 255.0,
		B: float64(hex&0xFF) / 255.0,
	}, nil
}

// isIntensity reports whether a scalar is a valid channel intensity
func isIntensity(x float64) bool {
	return x >= 0 && x <= 1
}

// IsValid reports whether all three channels are in [0, 1]
func (c Color) IsValid() bool {
	return isIntensity(c.R) && isIntensity(c.G) && isIntensity(c.B)
}

// Add returns the channelwise sum of two colors. The result may exceed [0, 1]
// and must be clamped before leaving the shader.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the channelwise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns the color with every channel clamped to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: max(0, min(1, c.R)),
		G: max(0, min(1, c.G)),
		B: max(0, min(1, c.B)),
	}
}
