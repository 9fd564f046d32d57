package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Minimum hit distance, keeps scattered rays from re-hitting their own surface
const shadowEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a fixed
// depth bound and cosine-weighted importance sampling
type PathTracingIntegrator struct {
	scene  *scene.Scene
	config scene.SamplingConfig
	pdf    pdf.PDF
}

// NewPathTracingIntegrator creates a new path tracing integrator over a scene
func NewPathTracingIntegrator(s *scene.Scene, config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		scene:  s,
		config: config,
		pdf:    pdf.NewCosinePDF(),
	}
}

// RayColor traces a camera ray with the configured maximum depth
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, pt.config.MaxDepth, sampler)
}

// Trace estimates the radiance along ray. depth counts the bounces still
// allowed; at depth 0 only emission is gathered.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	hit, isHit := pt.scene.World.Hit(ray, shadowEpsilon, math.Inf(1))
	if !isHit {
		return pt.scene.BackgroundColor(ray.Direction)
	}

	// Start with emitted light from the hit material
	emitted := material.Emitted(ray, *hit)
	if depth <= 0 {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return emitted
	}

	if scatter.IsSpecular() && pt.config.FollowSpecular {
		return emitted.Add(pt.calculateSpecularColor(scatter, depth, sampler))
	}

	return emitted.Add(pt.calculateDiffuseColor(scatter, hit, depth, sampler))
}

// calculateSpecularColor follows the material's own mirror or refraction ray
func (pt *PathTracingIntegrator) calculateSpecularColor(scatter material.ScatterResult, depth int, sampler core.Sampler) core.Vec3 {
	return scatter.Attenuation.MultiplyVec(pt.Trace(scatter.Scattered, depth-1, sampler))
}

// calculateDiffuseColor samples a new direction from the cosine PDF and weights
// the incoming radiance by scatteringPDF / samplingPDF
func (pt *PathTracingIntegrator) calculateDiffuseColor(scatter material.ScatterResult, hit *material.HitRecord, depth int, sampler core.Sampler) core.Vec3 {
	newRay := core.NewRay(hit.Point, pt.pdf.Generate(*hit, sampler))

	samplingPDF := pt.pdf.Value(*hit, newRay.Direction)
	if samplingPDF <= 0 {
		return core.Vec3{}
	}

	scatteringPDF := material.ScatteringPDF(newRay, *hit)
	incoming := pt.Trace(newRay, depth-1, sampler)
	return scatter.Attenuation.Multiply(scatteringPDF / samplingPDF).MultiplyVec(incoming)
}
