package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box3D is an axis-aligned box between two opposite corners, made of six rectangles
type Box3D struct {
	Min, Max core.Vec3
	faces    *ShapeList
}

// NewBox3D creates a box spanning p0..p1 with the same material on every face.
// Faces at the p1 side keep their +axis normal; faces at the p0 side are
// flipped so every normal points out of the box.
func NewBox3D(p0, p1 core.Vec3, mat material.Material) *Box3D {
	faces := NewShapeList(
		NewRectXY(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewFlipFace(NewRectXY(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat)),
		NewRectXZ(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewFlipFace(NewRectXZ(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat)),
		NewRectYZ(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewFlipFace(NewRectYZ(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat)),
	)

	return &Box3D{Min: p0, Max: p1, faces: faces}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box3D) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax)
}

// Faces returns the six face shapes
func (b *Box3D) Faces() []Shape {
	return b.faces.Shapes
}
