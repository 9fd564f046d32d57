package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight_NeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(15, 15, 15))
	hit := HitRecord{Normal: core.NewVec3(0, -1, 0), Material: light}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	if _, scattered := light.Scatter(ray, hit, sampler); scattered {
		t.Error("Diffuse light should never scatter")
	}
}

func TestDiffuseLight_Emitted_FrontFaceOnly(t *testing.T) {
	emission := core.NewVec3(4, 5, 6)
	light := NewDiffuseLight(emission)
	hit := HitRecord{
		Point:    core.NewVec3(0, 1, 0),
		Normal:   core.NewVec3(0, -1, 0), // facing down into the room
		Material: light,
	}

	t.Run("Front face emission", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
		if got := Emitted(ray, hit); !got.Equals(emission) {
			t.Errorf("Expected emission %v from front face, got %v", emission, got)
		}
	})

	t.Run("Back face no emission", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
		if got := Emitted(ray, hit); !got.Equals(core.Vec3{}) {
			t.Errorf("Expected zero emission from back face, got %v", got)
		}
	})

	t.Run("Grazing no emission", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, 0, 0))
		if got := Emitted(ray, hit); !got.Equals(core.Vec3{}) {
			t.Errorf("Expected zero emission for grazing ray, got %v", got)
		}
	})
}

func TestDiffuseLight_TexturedEmission(t *testing.T) {
	checker := NewSolidCheckerTexture(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 1.0)
	light := NewTexturedDiffuseLight(checker)
	ray := core.NewRay(core.NewVec3(1, 1, 5), core.NewVec3(0, 0, -1))

	hit := HitRecord{Point: core.NewVec3(1, 1, 1), Normal: core.NewVec3(0, 0, 1), Material: light}
	if got := light.Emitted(ray, hit); !got.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected even checker emission, got %v", got)
	}
}
