package renderer

import (
	"math"
	"testing"

	"github.com/joegreene/go-raytracer/pkg/core"
	"github.com/joegreene/go-raytracer/pkg/geometry"
	"github.com/joegreene/go-raytracer/pkg/lights"
)

func mustColor(t *testing.T, r, g, b float64) core.Color {
	t.Helper()
	c, err := core.NewColor(r, g, b)
	if err != nil {
		t.Fatalf("NewColor failed: %v", err)
	}
	return c
}

func mustAmbient(t *testing.T, color core.Color, intensity float64) lights.AmbientLight {
	t.Helper()
	ambient, err := lights.NewAmbientLight(color, intensity)
	if err != nil {
		t.Fatalf("NewAmbientLight failed: %v", err)
	}
	return ambient
}

func mustPointLight(t *testing.T, color core.Color, intensity float64, location core.Vec4) *lights.PointLight {
	t.Helper()
	light, err := lights.NewPointLight(color, intensity, location)
	if err != nil {
		t.Fatalf("NewPointLight failed: %v", err)
	}
	return light
}

func mustMaterial(t *testing.T, diffuse, specular core.Color, shininess float64) core.Material {
	t.Helper()
	material, err := core.NewMaterial(diffuse, specular, shininess)
	if err != nil {
		t.Fatalf("NewMaterial failed: %v", err)
	}
	return material
}

// testHit is a hit on the front of a unit sphere at the origin, viewed
// from (0, 0, 5).
func testHit() (core.Ray, *geometry.Intersection) {
	ray := core.Ray{Origin: core.NewPoint(0, 0, 5), Direction: core.NewDirection(0, 0, -1)}
	hit := &geometry.Intersection{
		Point:  core.NewPoint(0, 0, 1),
		Normal: core.NewDirection(0, 0, 1),
		T:      4,
	}
	return ray, hit
}

func colorsClose(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

func TestShader_AmbientOnly(t *testing.T) {
	shader := NewShader()
	ray, hit := testHit()

	diffuse := mustColor(t, 0.5, 0.8, 0.3)
	material := mustMaterial(t, diffuse, mustColor(t, 1, 1, 1), 0)
	ambient := mustAmbient(t, mustColor(t, 1, 1, 1), 0.2)

	got := shader.Shade(ray, hit, material, ambient, nil, nil)

	expected := diffuse.Multiply(0.2)
	if !colorsClose(got, expected, 1e-9) {
		t.Errorf("Expected ambient-only color %+v, got %+v", expected, got)
	}
}

func TestShader_InverseSquareFalloff(t *testing.T) {
	shader := NewShader()
	ray, hit := testHit()

	diffuse := mustColor(t, 0.5, 0.5, 0.5)
	material := mustMaterial(t, diffuse, mustColor(t, 0, 0, 0), 0)
	ambient := mustAmbient(t, mustColor(t, 1, 1, 1), 0.2)
	white := mustColor(t, 1, 1, 1)

	// Light directly along the normal: cos(theta) = 1 at both distances.
	near := shader.Shade(ray, hit, material, ambient,
		[]*lights.PointLight{mustPointLight(t, white, 0.4, core.NewPoint(0, 0, 2))}, nil)
	far := shader.Shade(ray, hit, material, ambient,
		[]*lights.PointLight{mustPointLight(t, white, 0.4, core.NewPoint(0, 0, 3))}, nil)

	ambientTerm := 0.2 * 0.5
	nearContrib := near.R - ambientTerm
	farContrib := far.R - ambientTerm

	if math.Abs(nearContrib-4*farContrib) > 1e-9 {
		t.Errorf("Doubling the distance should quarter the contribution: near=%g far=%g", nearContrib, farContrib)
	}
}

func TestShader_LightBelowHorizonContributesNothing(t *testing.T) {
	shader := NewShader()
	ray, hit := testHit()

	diffuse := mustColor(t, 0.5, 0.5, 0.5)
	material := mustMaterial(t, diffuse, mustColor(t, 0, 0, 0), 0)
	ambient := mustAmbient(t, mustColor(t, 1, 1, 1), 0.2)

	// Light behind the surface: cos(theta) clamps to zero.
	behind := mustPointLight(t, mustColor(t, 1, 1, 1), 10, core.NewPoint(0, 0, -3))
	got := shader.Shade(ray, hit, material, ambient, []*lights.PointLight{behind}, nil)

	expected := diffuse.Multiply(0.2)
	if !colorsClose(got, expected, 1e-9) {
		t.Errorf("Expected ambient only %+v, got %+v", expected, got)
	}
}

func TestShader_ShadowOcclusion(t *testing.T) {
	shader := NewShader()
	ray, hit := testHit()

	diffuse := mustColor(t, 0.5, 0.5, 0.5)
	material := mustMaterial(t, diffuse, mustColor(t, 1, 1, 1), 32)
	ambient := mustAmbient(t, mustColor(t, 1, 1, 1), 0.2)
	white := mustColor(t, 1, 1, 1)

	light := mustPointLight(t, white, 4, core.NewPoint(0, 0, 5))

	// Opaque sphere between the hit point and the light.
	occluder, err := geometry.NewSphere(core.NewPoint(0, 0, 3), 0.5, material)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}

	unshadowed := shader.Shade(ray, hit, material, ambient, []*lights.PointLight{light}, nil)
	shadowed := shader.Shade(ray, hit, material, ambient, []*lights.PointLight{light},
		[]geometry.Surface{occluder})

	expectedAmbient := diffuse.Multiply(0.2)
	if !colorsClose(shadowed, expectedAmbient, 1e-9) {
		t.Errorf("Occluded light should leave only ambient %+v, got %+v", expectedAmbient, shadowed)
	}
	if colorsClose(unshadowed, shadowed, 1e-9) {
		t.Error("Unoccluded shading should exceed the shadowed result")
	}
}

func TestShader_OcclusionIsPerLight(t *testing.T) {
	shader := NewShader()
	ray, hit := testHit()

	diffuse := mustColor(t, 0.5, 0.5, 0.5)
	material := mustMaterial(t, diffuse, mustColor(t, 0, 0, 0), 0)
	ambient := mustAmbient(t, mustColor(t, 1, 1, 1), 0.2)
	white := mustColor(t, 1, 1, 1)

	blocked := mustPointLight(t, white, 4, core.NewPoint(0, 0, 5))
	open := mustPointLight(t, white, 0.4, core.NewPoint(0, 0, 2))

	occluder, err := geometry.NewSphere(core.NewPoint(0, 0, 4), 0.25, material)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	surfaces := []geometry.Surface{occluder}

	both := shader.Shade(ray, hit, material, ambient, []*lights.PointLight{blocked, open}, surfaces)
	openOnly := shader.Shade(ray, hit, material, ambient, []*lights.PointLight{open}, surfaces)

	if !colorsClose(both, openOnly, 1e-9) {
		t.Errorf("Occluding one light must not disturb the other: both=%+v openOnly=%+v", both, openOnly)
	}
}

func TestShader_OutputAlwaysClamped(t *testing.T) {
	shader := NewShader()
	ray, hit := testHit()

	material := mustMaterial(t, mustColor(t, 1, 1, 1), mustColor(t, 1, 1, 1), 8)
	ambient := mustAmbient(t, mustColor(t, 1, 1, 1), 1)
	blazing := mustPointLight(t, mustColor(t, 1, 1, 1), 1000, core.NewPoint(0, 0, 2))

	got := shader.Shade(ray, hit, material, ambient, []*lights.PointLight{blazing}, nil)
	if !got.IsValid() {
		t.Errorf("Shader output escaped [0,1]: %+v", got)
	}
	if got != (core.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("Expected saturated white, got %+v", got)
	}
}
