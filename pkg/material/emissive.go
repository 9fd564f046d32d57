package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is a one-sided light-emitting material
type DiffuseLight struct {
	Emit ColorSource // Emitted radiance
}

// NewDiffuseLight creates a new solid-colored emitter
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emitter whose radiance comes from a texture
func NewTexturedDiffuseLight(emit ColorSource) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements the Material interface; lights absorb every incoming ray
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the texture value for rays arriving at the front face, zero otherwise
func (e *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if rayIn.Direction.Dot(hit.Normal) < 0 {
		return e.Emit.Evaluate(hit.UV, hit.Point)
	}
	return core.Vec3{X: 0, Y: 0, Z: 0}
}
