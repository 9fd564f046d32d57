package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCamera_CenterRayPointsAtLookAt(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1,
	})

	ray := camera.GetRay(0.5, 0.5)
	if ray.Origin != core.NewVec3(278, 278, -800) {
		t.Errorf("Expected ray origin at lookfrom, got %v", ray.Origin)
	}
	if !vecNear(ray.Direction.Normalize(), core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected center ray along +Z, got %v", ray.Direction.Normalize())
	}
}

func TestCamera_FieldOfViewAndOrientation(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:    core.Vec3{},
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	})

	top := camera.GetRay(0.5, 1).Direction
	bottom := camera.GetRay(0.5, 0).Direction
	right := camera.GetRay(1, 0.5).Direction

	// v = 0 is the bottom of the image
	if top.Y <= 0 || bottom.Y >= 0 {
		t.Errorf("Expected v=1 above and v=0 below the horizon, got top=%v bottom=%v", top, bottom)
	}
	// Half of a 90 degree vertical FOV is 45 degrees
	if math.Abs(top.Y-1) > tolerance || math.Abs(top.Z+1) > tolerance {
		t.Errorf("Expected top edge direction (0,1,-1), got %v", top)
	}
	// Aspect ratio 2 doubles the horizontal extent
	if math.Abs(right.X-2) > tolerance {
		t.Errorf("Expected right edge x=2, got %v", right)
	}
}
