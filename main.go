package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joegreene/go-raytracer/pkg/renderer"
	"github.com/joegreene/go-raytracer/pkg/scene"
)

// createScene builds the demo scene for a scene name
func createScene(name string) (*scene.Scene, error) {
	return scene.ByName(name)
}

func main() {
	sceneName := flag.String("scene", "default", "Scene name: 'default' or 'ortho'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Spheres on a ground sphere with two point lights (perspective)")
		fmt.Println("  ortho   - The same scene through an orthographic camera")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene>/render_<timestamp>.<format>")
		return
	}

	if *format != "ppm" && *format != "png" {
		fmt.Printf("Unknown format %q, expected 'ppm' or 'png'\n", *format)
		os.Exit(1)
	}

	selectedScene, err := createScene(*sceneName)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	outputDir := filepath.Join("output", *sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering scene %q at %dx%d...\n", *sceneName, *width, *height)

	fb, stats, err := selectedScene.RenderWithWorkers(*width, *height, *workers, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))

	switch *format {
	case "png":
		err = fb.WritePNGFile(filename)
	default:
		err = fb.WritePPMFile(filename)
	}
	if err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v (%d/%d pixels hit)\n",
		stats.RenderTime, stats.HitPixels, stats.TotalPixels)
	fmt.Printf("Render saved as %s\n", filename)
}
