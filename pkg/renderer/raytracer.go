package renderer

import (
	"fmt"
	"time"

	"github.com/joegreene/go-raytracer/pkg/core"
	"github.com/joegreene/go-raytracer/pkg/geometry"
	"github.com/joegreene/go-raytracer/pkg/lights"
	"github.com/joegreene/go-raytracer/pkg/raster"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Scene interface to avoid a circular import with the scene package
type Scene interface {
	GetCamera() *Camera
	GetBackground() core.Color
	GetAmbientLight() lights.AmbientLight
	GetSurfaces() []geometry.Surface
	GetPointLights() []*lights.PointLight
}

// Raytracer renders a scene into a framebuffer, one viewing ray per
// pixel. Scene data is read-only for the whole render, so rows are
// distributed across a worker pool with each worker owning disjoint
// framebuffer rows.
type Raytracer struct {
	scene  Scene
	width  int
	height int
	shader *Shader
	pool   *WorkerPool
	logger core.Logger
}

// NewRaytracer creates a raytracer for the given resolution. numWorkers
// <= 0 selects one worker per CPU.
func NewRaytracer(scene Scene, width, height, numWorkers int, logger core.Logger) (*Raytracer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d: %w", width, height, core.ErrInvalidGeometry)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		shader: NewShader(),
		pool:   NewWorkerPool(numWorkers),
		logger: logger,
	}, nil
}

// hitWorld reduces the ray against every surface in the scene and keeps
// the globally nearest intersection. Insertion order never matters: the
// winner is the smallest t across the whole list.
func (rt *Raytracer) hitWorld(ray core.Ray) (*geometry.Intersection, geometry.Surface) {
	var closest *geometry.Intersection
	var closestSurface geometry.Surface

	for _, surface := range rt.scene.GetSurfaces() {
		if hit, isHit := surface.Intersect(ray); isHit {
			if closest == nil || hit.T < closest.T {
				closest = hit
				closestSurface = surface
			}
		}
	}

	return closest, closestSurface
}

// renderRow renders one framebuffer row. Rows are independent; this is
// the unit of work handed to the pool.
func (rt *Raytracer) renderRow(fb *raster.Framebuffer, j int) RowStats {
	camera := rt.scene.GetCamera()
	background := rt.scene.GetBackground()
	ambient := rt.scene.GetAmbientLight()
	pointLights := rt.scene.GetPointLights()
	surfaces := rt.scene.GetSurfaces()

	stats := RowStats{Pixels: rt.width}

	for i := 0; i < rt.width; i++ {
		ray := camera.GenerateRay(i, j, rt.width, rt.height)

		hit, surface := rt.hitWorld(ray)
		if hit == nil {
			fb.SetPixel(i, j, background)
			continue
		}

		stats.Hits++
		color := rt.shader.Shade(ray, hit, surface.Material(), ambient, pointLights, surfaces)
		fb.SetPixel(i, j, color)
	}

	return stats
}

// Render renders the scene and returns the framebuffer along with
// statistics. Rendering is a pure function of the scene and resolution;
// repeated calls produce identical framebuffers.
func (rt *Raytracer) Render() (*raster.Framebuffer, RenderStats, error) {
	fb, err := raster.NewFramebuffer(rt.width, rt.height, rt.scene.GetBackground())
	if err != nil {
		return nil, RenderStats{}, err
	}

	startTime := time.Now()
	stats := rt.pool.RenderRows(rt.height, func(j int) RowStats {
		return rt.renderRow(fb, j)
	})
	stats.RenderTime = time.Since(startTime)

	rt.logger.Printf("Rendered %d pixels (%d hits, %d misses) in %v with %d workers\n",
		stats.TotalPixels, stats.HitPixels, stats.MissPixels, stats.RenderTime, rt.pool.NumWorkers())

	return fb, stats, nil
}
