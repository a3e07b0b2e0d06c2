package scene

import (
	"fmt"

	"github.com/joegreene/go-raytracer/pkg/core"
	"github.com/joegreene/go-raytracer/pkg/geometry"
	"github.com/joegreene/go-raytracer/pkg/lights"
	"github.com/joegreene/go-raytracer/pkg/raster"
	"github.com/joegreene/go-raytracer/pkg/renderer"
)

// Scene ties together everything a render needs: the camera, the ambient
// light, a background color, the surfaces, and the point lights. All of
// it is immutable once rendering starts; Render is a pure function of
// the scene and the requested resolution.
type Scene struct {
	camera      *renderer.Camera
	ambient     lights.AmbientLight
	background  core.Color
	surfaces    []geometry.Surface
	pointLights []*lights.PointLight
}

// NewScene creates a scene with no surfaces and no point lights
func NewScene(camera *renderer.Camera, ambient lights.AmbientLight, background core.Color) (*Scene, error) {
	if camera == nil {
		return nil, fmt.Errorf("scene camera must not be nil: %w", core.ErrInvalidGeometry)
	}
	if !background.IsValid() {
		return nil, fmt.Errorf("background color %+v out of range: %w", background, core.ErrInvalidColor)
	}
	return &Scene{camera: camera, ambient: ambient, background: background}, nil
}

// AddSurface adds a surface to the scene
func (s *Scene) AddSurface(surface geometry.Surface) {
	s.surfaces = append(s.surfaces, surface)
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(light *lights.PointLight) {
	s.pointLights = append(s.pointLights, light)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetBackground returns the background color
func (s *Scene) GetBackground() core.Color {
	return s.background
}

// GetAmbientLight returns the ambient light
func (s *Scene) GetAmbientLight() lights.AmbientLight {
	return s.ambient
}

// GetSurfaces returns the scene surfaces
func (s *Scene) GetSurfaces() []geometry.Surface {
	return s.surfaces
}

// GetPointLights returns the scene point lights
func (s *Scene) GetPointLights() []*lights.PointLight {
	return s.pointLights
}

// Render renders the scene at the given resolution using the default
// worker count
func (s *Scene) Render(width, height int) (*raster.Framebuffer, renderer.RenderStats, error) {
	return s.RenderWithWorkers(width, height, 0, nil)
}

// RenderWithWorkers renders the scene with an explicit worker count and
// logger; numWorkers <= 0 selects one worker per CPU, a nil logger
// selects the default stdout logger.
func (s *Scene) RenderWithWorkers(width, height, numWorkers int, logger core.Logger) (*raster.Framebuffer, renderer.RenderStats, error) {
	rt, err := renderer.NewRaytracer(s, width, height, numWorkers, logger)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	return rt.Render()
}
