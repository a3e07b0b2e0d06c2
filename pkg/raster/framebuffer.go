package raster

import (
	"fmt"

	"github.com/joegreene/go-raytracer/pkg/core"
)

// Framebuffer is a width x height grid of colors. Row 0 is the bottom of
// the image, matching the camera viewport's up direction; the writers
// take care of emitting rows top-first. The framebuffer is mutated only
// through SetPixel, so disjoint rows can be written concurrently.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Color // row-major, index j*width + i
}

// NewFramebuffer creates a framebuffer with every pixel set to fill
func NewFramebuffer(width, height int, fill core.Color) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer dimensions must be positive, got %dx%d: %w", width, height, core.ErrInvalidGeometry)
	}
	if !fill.IsValid() {
		return nil, fmt.Errorf("framebuffer fill color %+v out of range: %w", fill, core.ErrInvalidColor)
	}

	pixels := make([]core.Color, width*height)
	for i := range pixels {
		pixels[i] = fill
	}
	return &Framebuffer{width: width, height: height, pixels: pixels}, nil
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int {
	return fb.height
}

// IsCoordinate reports whether (x, y) addresses a pixel
func (fb *Framebuffer) IsCoordinate(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// PixelAt returns the color at (x, y). Panics on out-of-range
// coordinates, like a slice index.
func (fb *Framebuffer) PixelAt(x, y int) core.Color {
	if !fb.IsCoordinate(x, y) {
		panic(fmt.Sprintf("raster: pixel (%d, %d) outside %dx%d framebuffer", x, y, fb.width, fb.height))
	}
	return fb.pixels[y*fb.width+x]
}

// SetPixel writes the color at (x, y). Panics on out-of-range
// coordinates, like a slice index.
func (fb *Framebuffer) SetPixel(x, y int, color core.Color) {
	if !fb.IsCoordinate(x, y) {
		panic(fmt.Sprintf("raster: pixel (%d, %d) outside %dx%d framebuffer", x, y, fb.width, fb.height))
	}
	fb.pixels[y*fb.width+x] = color
}
