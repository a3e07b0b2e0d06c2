package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// ToImage converts the framebuffer to a standard library RGBA image.
// Image row 0 is the top of the picture, so framebuffer rows are flipped.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.PixelAt(x, y)
			img.SetRGBA(x, fb.height-1-y, color.RGBA{
				R: uint8(discretize(c.R)),
				G: uint8(discretize(c.G)),
				B: uint8(discretize(c.B)),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes the image as PNG
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, fb.ToImage()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WritePNGFile writes the image to a PNG file at path
func (fb *Framebuffer) WritePNGFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %w", err)
	}

	if err := fb.WritePNG(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close PNG file: %w", err)
	}
	return nil
}
