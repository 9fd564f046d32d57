package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// expectPanic runs fn and reports whether it panicked with a message containing want
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic containing %q, got none", want)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, want) {
			t.Fatalf("Expected panic containing %q, got %v", want, r)
		}
	}()
	fn()
}

func TestShapeBuilder_PanicsOnMissingState(t *testing.T) {
	tests := []struct {
		name string
		want string
		fn   func()
	}{
		{"lambertian without texture", "Lambertian called without a staged texture", func() { NewShapeBuilder().Lambertian() }},
		{"metal without texture", "Metal called without a staged texture", func() { NewShapeBuilder().Metal(0.1) }},
		{"light without texture", "DiffuseLight called without a staged texture", func() { NewShapeBuilder().DiffuseLight() }},
		{"sphere without material", "Sphere called without a staged material", func() { NewShapeBuilder().Sphere(core.Vec3{}, 1) }},
		{"rect without material", "RectXZ called without a staged material", func() {
			NewShapeBuilder().ColorTexture(core.One()).RectXZ(0, 1, 0, 1, 0)
		}},
		{"box without material", "Box3D called without a staged material", func() { NewShapeBuilder().Box3D(core.Vec3{}, core.One()) }},
		{"flip without shape", "FlipFace called without a staged shape", func() { NewShapeBuilder().FlipFace() }},
		{"build without shape", "Build called without a staged shape", func() {
			NewShapeBuilder().ColorTexture(core.One()).Lambertian().Build()
		}},
		{"texture consumed by material", "Metal called without a staged texture", func() {
			NewShapeBuilder().ColorTexture(core.One()).Lambertian().Metal(0)
		}},
		{"material consumed by shape", "RectXY called without a staged material", func() {
			NewShapeBuilder().ColorTexture(core.One()).Lambertian().Sphere(core.Vec3{}, 1).RectXY(0, 1, 0, 1, 0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectPanic(t, tt.want, tt.fn)
		})
	}
}

func TestShapeBuilder_Build(t *testing.T) {
	shape := NewShapeBuilder().
		ColorTexture(core.NewVec3(0.5, 0.6, 0.7)).
		Lambertian().
		Sphere(core.NewVec3(0, 0, -5), 1).
		Build()

	sphere, ok := shape.(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected *geometry.Sphere, got %T", shape)
	}
	lambertian, ok := sphere.Material.(*material.Lambertian)
	if !ok {
		t.Fatalf("Expected Lambertian material, got %T", sphere.Material)
	}
	if got := lambertian.Albedo.Evaluate(core.Vec2{}, core.Vec3{}); got != core.NewVec3(0.5, 0.6, 0.7) {
		t.Errorf("Expected staged color as albedo, got %v", got)
	}
}

func TestShapeBuilder_FlipFace(t *testing.T) {
	shape := NewShapeBuilder().
		ColorTexture(core.Full(4)).
		DiffuseLight().
		RectXZ(-1, 1, -1, 1, 2).
		FlipFace().
		Build()

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))
	hit, ok := shape.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Normal != core.NewVec3(0, -1, 0) {
		t.Errorf("Expected flipped normal facing down, got %v", hit.Normal)
	}
	if got := material.Emitted(ray, *hit); got != core.Full(4) {
		t.Errorf("Expected emission from the flipped front face, got %v", got)
	}
}

func TestShapeBuilder_DielectricNeedsNoTexture(t *testing.T) {
	shape := NewShapeBuilder().Dielectric(1.5).Sphere(core.Vec3{}, 1).Build()
	sphere := shape.(*geometry.Sphere)
	if _, ok := sphere.Material.(*material.Dielectric); !ok {
		t.Errorf("Expected Dielectric material, got %T", sphere.Material)
	}
}

func TestShapeBuilder_SharedMaterial(t *testing.T) {
	shared := material.NewLambertian(core.Full(0.5))
	a := NewShapeBuilder().Material(shared).Sphere(core.Vec3{}, 1).Build().(*geometry.Sphere)
	b := NewShapeBuilder().Material(shared).Sphere(core.NewVec3(3, 0, 0), 1).Build().(*geometry.Sphere)
	if a.Material != b.Material {
		t.Error("Expected both shapes to reference the same material")
	}
}
