package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// Cornell box wall colors
var (
	cornellRed   = core.NewVec3(0.64, 0.05, 0.05)
	cornellWhite = core.Full(0.73)
	cornellGreen = core.NewVec3(0.12, 0.45, 0.15)
)

// cornellCameraConfig looks into the open front of the box
func cornellCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),        // Standard up direction
		VFov:        40.0,
		AspectRatio: 1.0, // Square aspect ratio for Cornell box
	}
}

// newCornellWalls builds the five walls and the ceiling light. Walls whose
// rectangle normal points out of the box are flipped to face inward.
func newCornellWalls() *geometry.ShapeList {
	world := geometry.NewShapeList()

	// Right wall (green) - YZ plane at x=boxSize
	world.Add(NewShapeBuilder().
		ColorTexture(cornellGreen).
		Lambertian().
		RectYZ(0, boxSize, 0, boxSize, boxSize).
		FlipFace().
		Build())

	// Left wall (red) - YZ plane at x=0
	world.Add(NewShapeBuilder().
		ColorTexture(cornellRed).
		Lambertian().
		RectYZ(0, boxSize, 0, boxSize, 0).
		Build())

	// Ceiling light just below the ceiling, facing down
	world.Add(NewShapeBuilder().
		ColorTexture(core.Full(15.0)).
		DiffuseLight().
		RectXZ(213, 343, 227, 332, boxSize-1).
		FlipFace().
		Build())

	// Ceiling (white) - XZ plane at y=boxSize
	world.Add(NewShapeBuilder().
		ColorTexture(cornellWhite).
		Lambertian().
		RectXZ(0, boxSize, 0, boxSize, boxSize).
		FlipFace().
		Build())

	// Floor (white) - XZ plane at y=0
	world.Add(NewShapeBuilder().
		ColorTexture(cornellWhite).
		Lambertian().
		RectXZ(0, boxSize, 0, boxSize, 0).
		Build())

	// Back wall (white) - XY plane at z=boxSize
	world.Add(NewShapeBuilder().
		ColorTexture(cornellWhite).
		Lambertian().
		RectXY(0, boxSize, 0, boxSize, boxSize).
		FlipFace().
		Build())

	return world
}

// NewCornellScene creates the classic Cornell box: five diffuse walls, a
// ceiling area light and two white boxes
func NewCornellScene() *Scene {
	world := newCornellWalls()

	// Short box in front, tall box at the back
	world.Add(NewShapeBuilder().
		ColorTexture(cornellWhite).
		Lambertian().
		Box3D(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230)).
		Build())
	world.Add(NewShapeBuilder().
		ColorTexture(cornellWhite).
		Lambertian().
		Box3D(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460)).
		Build())

	return &Scene{
		World:        world,
		CameraConfig: cornellCameraConfig(),
		Background:   ConstantBackground(core.Vec3{}), // Enclosed box, black background
		SamplingConfig: SamplingConfig{
			Width:           400,
			Height:          400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}

// NewCornellMetalScene creates a Cornell box variant with a checkered floor,
// a brushed metal sphere and a glass sphere in place of the two boxes
func NewCornellMetalScene() *Scene {
	world := newCornellWalls()

	// Checkered floor laid over the white one
	world.Add(NewShapeBuilder().
		CheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.Full(0.9), 0.05).
		Lambertian().
		RectXZ(0, boxSize, 0, boxSize, 0.5).
		Build())

	world.Add(NewShapeBuilder().
		ColorTexture(core.NewVec3(0.8, 0.85, 0.88)).
		Metal(0.2).
		Sphere(core.NewVec3(370, 120, 350), 120).
		Build())

	world.Add(NewShapeBuilder().
		Dielectric(1.5).
		Sphere(core.NewVec3(190, 90, 190), 90).
		Build())

	return &Scene{
		World:        world,
		CameraConfig: cornellCameraConfig(),
		Background:   ConstantBackground(core.Vec3{}),
		SamplingConfig: SamplingConfig{
			Width:           400,
			Height:          400,
			SamplesPerPixel: 200,
			MaxDepth:        50,
			FollowSpecular:  true,
		},
	}
}
