package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Cosine-weighted direction in the hemisphere around the normal
	direction := core.NewONB(hit.Normal).Local(core.RandomCosineDirection(sampler)).Normalize()
	scattered := core.NewRay(hit.Point, direction)

	// PDF: cos(θ) / π where θ is angle from normal
	pdf := direction.Dot(hit.Normal) / math.Pi

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         pdf,
	}, true
}

// ScatteringPDF returns max(cos θ, 0) / π for the actual outgoing ray
func (l *Lambertian) ScatteringPDF(scattered core.Ray, hit HitRecord) float64 {
	cosine := scattered.Direction.Normalize().Dot(hit.Normal)
	return math.Max(cosine, 0) / math.Pi
}
