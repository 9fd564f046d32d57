package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// dummyMaterial is a non-scattering material used to tag hits in tests
type dummyMaterial struct {
	name string
}

func (d *dummyMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

const tolerance = 1e-9

func vecNear(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < tolerance
}
