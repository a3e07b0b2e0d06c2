package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// discretize converts a channel intensity in [0, 1] to a byte value in
// [0, 255], clamping first so out-of-range input can never escape.
func discretize(intensity float64) int {
	clamped := max(0.0, min(1.0, intensity))
	value := int(clamped*255.0 + 0.5)
	if value > 255 {
		value = 255
	}
	return value
}

// WritePPM writes the image in the ASCII "P3" PPM format. The top image
// row (y = height-1) is written first, each row holding width
// space-separated RGB triples.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.width, fb.height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := fb.height - 1; y >= 0; y-- {
		for x := 0; x < fb.width; x++ {
			c := fb.PixelAt(x, y)
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("failed to write PPM row: %w", err)
				}
			}
			if _, err := fmt.Fprintf(bw, "%d %d %d", discretize(c.R), discretize(c.G), discretize(c.B)); err != nil {
				return fmt.Errorf("failed to write PPM row: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write PPM row: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}

// WritePPMFile writes the image to a PPM file at path. The file is
// closed on every exit path; write and close failures surface as errors
// without touching the framebuffer.
func (fb *Framebuffer) WritePPMFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PPM file: %w", err)
	}

	if err := fb.WritePPM(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close PPM file: %w", err)
	}
	return nil
}
