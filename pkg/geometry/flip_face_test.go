package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestFlipFace_NegatesNormalOnly(t *testing.T) {
	mat := &dummyMaterial{}
	rect := NewRectXZ(0, 2, 0, 2, 1, mat)
	flipped := NewFlipFace(rect)
	ray := core.NewRay(core.NewVec3(0.5, 0, 1.5), core.NewVec3(0, 1, 0))

	original, ok := rect.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit on rect")
	}
	hit, ok := flipped.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit on flipped rect")
	}

	if hit.Normal != original.Normal.Negate() {
		t.Errorf("Expected normal %v, got %v", original.Normal.Negate(), hit.Normal)
	}
	if hit.T != original.T || hit.Point != original.Point || hit.UV != original.UV || hit.Material != original.Material {
		t.Errorf("Expected all other fields unchanged: %+v vs %+v", hit, original)
	}
}

func TestFlipFace_ForwardsMiss(t *testing.T) {
	flipped := NewFlipFace(NewSphere(core.Vec3{}, 1, &dummyMaterial{}))
	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(1, 0, 0))
	if _, ok := flipped.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("Expected miss to be forwarded")
	}
}

func TestFlipFace_DoubleFlipRestores(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, &dummyMaterial{})
	double := NewFlipFace(NewFlipFace(sphere))
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	hit, ok := double.Hit(ray, 0.001, math.Inf(1))
	if !ok || hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected restored outward normal, got %v", hit)
	}
}
