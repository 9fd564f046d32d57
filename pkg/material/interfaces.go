package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter optionally produces an outgoing ray, its attenuation and the density
	// under which the material's own distribution would have sampled it.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(rayIn core.Ray, hit HitRecord) core.Vec3
}

// ScatteringPDFer is implemented by materials whose BRDF·cosine density can be
// evaluated for an arbitrary outgoing ray
type ScatteringPDFer interface {
	ScatteringPDF(scattered core.Ray, hit HitRecord) float64
}

// Emitted returns the radiance emitted at hit, or zero for non-emissive materials
func Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if emitter, ok := hit.Material.(Emitter); ok {
		return emitter.Emitted(rayIn, hit)
	}
	return core.Vec3{X: 0, Y: 0, Z: 0}
}

// ScatteringPDF evaluates the material's scattering density for the given
// outgoing ray, or zero when the material does not define one
func ScatteringPDF(scattered core.Ray, hit HitRecord) float64 {
	if s, ok := hit.Material.(ScatteringPDFer); ok {
		return s.ScatteringPDF(scattered, hit)
	}
	return 0.0
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation (albedo)
	PDF         float64   // Probability density function (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Surface normal as reported by the shape
	Material Material  // Material of the hit object, shared and read-only
	UV       core.Vec2 // Texture coordinates
}
