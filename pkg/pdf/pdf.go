package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// PDF is a direction sampling strategy anchored at a surface hit
type PDF interface {
	// Value returns the density of sampling direction from hit
	Value(hit material.HitRecord, direction core.Vec3) float64
	// Generate draws a direction from this density
	Generate(hit material.HitRecord, sampler core.Sampler) core.Vec3
}

// CosinePDF samples directions with density cos(θ)/π about the hit normal
type CosinePDF struct{}

// NewCosinePDF creates a cosine-weighted hemisphere PDF
func NewCosinePDF() CosinePDF {
	return CosinePDF{}
}

// Value returns cos(θ)/π, or 0 for directions on the back side of the surface
func (CosinePDF) Value(hit material.HitRecord, direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(hit.Normal)
	if cosine > 0 {
		return cosine / math.Pi
	}
	return 0
}

// Generate draws a cosine-weighted direction in the hemisphere around the hit normal
func (CosinePDF) Generate(hit material.HitRecord, sampler core.Sampler) core.Vec3 {
	return core.NewONB(hit.Normal).Local(core.RandomCosineDirection(sampler))
}
