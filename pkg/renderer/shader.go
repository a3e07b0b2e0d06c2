package renderer

import (
	"math"

	"github.com/joegreene/go-raytracer/pkg/core"
	"github.com/joegreene/go-raytracer/pkg/geometry"
	"github.com/joegreene/go-raytracer/pkg/lights"
)

// shadowBias offsets feeler ray origins along the surface normal so a
// surface never shadows itself.
const shadowBias = 1e-4

// Shader evaluates the local illumination model at a hit point: an
// ambient term, Lambertian diffuse with inverse-square falloff per point
// light, and an additive Blinn-Phong specular term for shiny materials.
// Occluded lights contribute nothing; the accumulated color is clamped
// before it leaves the shader.
type Shader struct{}

// NewShader creates a shader
func NewShader() *Shader {
	return &Shader{}
}

// Shade computes the final color for a hit. The viewing ray supplies the
// view direction for the specular term; surfaces are consulted for shadow
// occlusion only.
func (s *Shader) Shade(ray core.Ray, hit *geometry.Intersection, material core.Material,
	ambient lights.AmbientLight, pointLights []*lights.PointLight, surfaces []geometry.Surface) core.Color {

	normal := hit.Normal.Normalize()
	viewDir := ray.Direction.Negate().Normalize()

	accumulated := material.DiffuseColor.
		MultiplyColor(ambient.Color).
		Multiply(ambient.Intensity)

	for _, light := range pointLights {
		lightVec := light.Location.Subtract(hit.Point)
		distance := lightVec.Length()
		if distance == 0 {
			continue
		}
		unitLight := lightVec.Multiply(1 / distance)

		// Each light is occlusion-tested independently; a blocked light
		// drops out without affecting the others.
		if s.occluded(hit.Point, normal, unitLight, distance, surfaces) {
			continue
		}

		falloff := light.Intensity / (distance * distance)

		cosTheta := normal.Dot(unitLight)
		if cosTheta > 0 {
			diffuse := material.DiffuseColor.
				MultiplyColor(light.Color).
				Multiply(falloff * cosTheta)
			accumulated = accumulated.Add(diffuse)
		}

		if material.Shininess > 0 {
			half := unitLight.Add(viewDir).Normalize()
			cosAlpha := normal.Dot(half)
			if cosAlpha > 0 {
				specular := material.SpecularColor.
					MultiplyColor(light.Color).
					Multiply(falloff * math.Pow(cosAlpha, material.Shininess))
				accumulated = accumulated.Add(specular)
			}
		}
	}

	// Authoritative clamp: light sums may exceed [0,1] but never escape.
	return accumulated.Clamp()
}

// occluded casts a shadow feeler from just above the hit point toward a
// light and reports whether any surface sits closer than the light.
func (s *Shader) occluded(point, normal, unitLight core.Vec4, distance float64, surfaces []geometry.Surface) bool {
	feeler := core.Ray{
		Origin:    point.Add(normal.Multiply(shadowBias)),
		Direction: unitLight,
	}
	for _, surface := range surfaces {
		if hit, isHit := surface.Intersect(feeler); isHit && hit.T < distance {
			return true
		}
	}
	return false
}
