package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Poster placement on the Cornell back wall, centered and a unit in front of it
const (
	posterMin = boxSize / 4
	posterMax = boxSize * 3 / 4
	posterZ   = boxSize - 1
)

// mirroredU flips a texture horizontally. The Cornell camera looks down +Z,
// so world +X runs right to left across the image.
type mirroredU struct {
	inner material.ColorSource
}

func (m mirroredU) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return m.inner.Evaluate(core.NewVec2(1-uv.X, uv.Y), point)
}

// AddPoster hangs a diffuse textured square on the back wall of a Cornell
// scene, oriented so the texture reads left to right from the camera.
func AddPoster(s *Scene, texture material.ColorSource) {
	s.World.Add(NewShapeBuilder().
		Texture(mirroredU{inner: texture}).
		Lambertian().
		RectXY(posterMin, posterMax, posterMin, posterMax, posterZ).
		FlipFace().
		Build())
}
