package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShapeBuilder stages a texture, a material and a shape and assembles them
// into a single scene object. Material steps consume the staged texture and
// shape steps consume the staged material. Calling a step without the state
// it needs is a programming error and panics.
type ShapeBuilder struct {
	texture  material.ColorSource
	material material.Material
	shape    geometry.Shape
}

// NewShapeBuilder returns an empty builder
func NewShapeBuilder() *ShapeBuilder {
	return &ShapeBuilder{}
}

// Texture stages an arbitrary color source
func (b *ShapeBuilder) Texture(texture material.ColorSource) *ShapeBuilder {
	b.texture = texture
	return b
}

// ColorTexture stages a solid color texture
func (b *ShapeBuilder) ColorTexture(color core.Vec3) *ShapeBuilder {
	return b.Texture(material.NewSolidColor(color))
}

// CheckerTexture stages a 3D checker of two solid colors
func (b *ShapeBuilder) CheckerTexture(odd, even core.Vec3, freq float64) *ShapeBuilder {
	return b.Texture(material.NewSolidCheckerTexture(odd, even, freq))
}

// Material stages a ready-made material, which may be shared with other shapes
func (b *ShapeBuilder) Material(mat material.Material) *ShapeBuilder {
	b.material = mat
	return b
}

func (b *ShapeBuilder) Lambertian() *ShapeBuilder {
	b.material = material.NewTexturedLambertian(b.takeTexture("Lambertian"))
	return b
}

func (b *ShapeBuilder) Metal(fuzz float64) *ShapeBuilder {
	b.material = material.NewTexturedMetal(b.takeTexture("Metal"), fuzz)
	return b
}

// Dielectric stages a clear glass-like material; it needs no texture
func (b *ShapeBuilder) Dielectric(refractiveIndex float64) *ShapeBuilder {
	b.material = material.NewDielectric(refractiveIndex)
	return b
}

func (b *ShapeBuilder) DiffuseLight() *ShapeBuilder {
	b.material = material.NewTexturedDiffuseLight(b.takeTexture("DiffuseLight"))
	return b
}

func (b *ShapeBuilder) Sphere(center core.Vec3, radius float64) *ShapeBuilder {
	b.shape = geometry.NewSphere(center, radius, b.takeMaterial("Sphere"))
	return b
}

func (b *ShapeBuilder) RectXY(x0, x1, y0, y1, k float64) *ShapeBuilder {
	b.shape = geometry.NewRectXY(x0, x1, y0, y1, k, b.takeMaterial("RectXY"))
	return b
}

func (b *ShapeBuilder) RectXZ(x0, x1, z0, z1, k float64) *ShapeBuilder {
	b.shape = geometry.NewRectXZ(x0, x1, z0, z1, k, b.takeMaterial("RectXZ"))
	return b
}

func (b *ShapeBuilder) RectYZ(y0, y1, z0, z1, k float64) *ShapeBuilder {
	b.shape = geometry.NewRectYZ(y0, y1, z0, z1, k, b.takeMaterial("RectYZ"))
	return b
}

func (b *ShapeBuilder) Box3D(p0, p1 core.Vec3) *ShapeBuilder {
	b.shape = geometry.NewBox3D(p0, p1, b.takeMaterial("Box3D"))
	return b
}

// FlipFace wraps the staged shape so its normals point the other way
func (b *ShapeBuilder) FlipFace() *ShapeBuilder {
	if b.shape == nil {
		panic("scene: ShapeBuilder.FlipFace called without a staged shape")
	}
	b.shape = geometry.NewFlipFace(b.shape)
	return b
}

// Build returns the staged shape
func (b *ShapeBuilder) Build() geometry.Shape {
	if b.shape == nil {
		panic("scene: ShapeBuilder.Build called without a staged shape")
	}
	return b.shape
}

func (b *ShapeBuilder) takeTexture(step string) material.ColorSource {
	if b.texture == nil {
		panic(fmt.Sprintf("scene: ShapeBuilder.%s called without a staged texture", step))
	}
	texture := b.texture
	b.texture = nil
	return texture
}

func (b *ShapeBuilder) takeMaterial(step string) material.Material {
	if b.material == nil {
		panic(fmt.Sprintf("scene: ShapeBuilder.%s called without a staged material", step))
	}
	mat := b.material
	b.material = nil
	return mat
}
