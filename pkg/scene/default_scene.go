package scene

import (
	"github.com/joegreene/go-raytracer/pkg/core"
	"github.com/joegreene/go-raytracer/pkg/geometry"
	"github.com/joegreene/go-raytracer/pkg/lights"
	"github.com/joegreene/go-raytracer/pkg/renderer"
)

// NewDefaultScene creates the default demo scene: three spheres resting
// on a large ground sphere, lit by two point lights, with a perspective
// camera.
func NewDefaultScene() (*Scene, error) {
	return newDemoScene(true)
}

// NewOrthographicScene is the default scene viewed through an
// orthographic camera; every viewing ray shares the gaze direction.
func NewOrthographicScene() (*Scene, error) {
	return newDemoScene(false)
}

func newDemoScene(perspective bool) (*Scene, error) {
	camera, err := renderer.NewCamera(renderer.CameraConfig{
		Location:    core.NewPoint(0, 1, 6),
		Gaze:        core.NewDirection(0, -0.1, -1),
		Up:          core.NewDirection(0, 1, 0),
		Left:        -2,
		Right:       2,
		Bottom:      -1.5,
		Top:         1.5,
		Distance:    2,
		Perspective: perspective,
	})
	if err != nil {
		return nil, err
	}

	background, err := core.NewWebColor(0x87CEEB) // sky blue
	if err != nil {
		return nil, err
	}

	white, err := core.NewColor(1, 1, 1)
	if err != nil {
		return nil, err
	}

	ambient, err := lights.NewAmbientLight(white, 0.2)
	if err != nil {
		return nil, err
	}

	s, err := NewScene(camera, ambient, background)
	if err != nil {
		return nil, err
	}

	type sphereDef struct {
		diffuse   uint32
		specular  uint32
		shininess float64
		center    core.Vec4
		radius    float64
	}
	spheres := []sphereDef{
		{diffuse: 0xCC3333, specular: 0xFFFFFF, shininess: 64, center: core.NewPoint(0, 0.5, 0), radius: 1},
		{diffuse: 0x33AA55, specular: 0x808080, shininess: 16, center: core.NewPoint(-2.2, 0.1, -1), radius: 0.8},
		{diffuse: 0x3355CC, specular: 0x808080, shininess: 16, center: core.NewPoint(2.1, 0.2, -0.5), radius: 0.7},
		// Ground: a very large sphere standing in for an infinite plane.
		{diffuse: 0x999988, specular: 0x000000, shininess: 0, center: core.NewPoint(0, -500.5, 0), radius: 500},
	}

	for _, def := range spheres {
		diffuse, err := core.NewWebColor(def.diffuse)
		if err != nil {
			return nil, err
		}
		specular, err := core.NewWebColor(def.specular)
		if err != nil {
			return nil, err
		}
		material, err := core.NewMaterial(diffuse, specular, def.shininess)
		if err != nil {
			return nil, err
		}
		sphere, err := geometry.NewSphere(def.center, def.radius, material)
		if err != nil {
			return nil, err
		}
		s.AddSurface(sphere)
	}

	keyLight, err := lights.NewPointLight(white, 40, core.NewPoint(4, 6, 4))
	if err != nil {
		return nil, err
	}
	s.AddPointLight(keyLight)

	warm, err := core.NewWebColor(0xFFE0B0)
	if err != nil {
		return nil, err
	}
	fillLight, err := lights.NewPointLight(warm, 12, core.NewPoint(-5, 3, 2))
	if err != nil {
		return nil, err
	}
	s.AddPointLight(fillLight)

	return s, nil
}
