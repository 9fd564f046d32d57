package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FlipFace wraps a shape and reverses the normals it reports
type FlipFace struct {
	Shape Shape
}

// NewFlipFace wraps shape so its normals point the other way
func NewFlipFace(shape Shape) *FlipFace {
	return &FlipFace{Shape: shape}
}

// Hit forwards to the wrapped shape and negates the normal
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, isHit := f.Shape.Hit(ray, tMin, tMax)
	if !isHit {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}
