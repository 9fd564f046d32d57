package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// A scene is immutable once constructed and is shared read-only by all render workers.
type Scene struct {
	World        *geometry.ShapeList   // Objects in the scene
	CameraConfig geometry.CameraConfig // Lookat parameters; aspect ratio is filled in per render

	// Background gives the radiance for rays that hit nothing
	Background func(direction core.Vec3) core.Vec3

	SamplingConfig SamplingConfig // Recommended render settings
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int  // Image width
	Height          int  // Image height
	SamplesPerPixel int  // Number of rays per pixel
	MaxDepth        int  // Maximum ray bounce depth
	FollowSpecular  bool // Trace mirror and glass rays directly instead of through the cosine PDF
}

// NewCamera builds the scene camera for the given image aspect ratio (width / height)
func (s *Scene) NewCamera(aspectRatio float64) *geometry.Camera {
	config := s.CameraConfig
	config.AspectRatio = aspectRatio
	return geometry.NewCamera(config)
}

// BackgroundColor returns the background radiance for a ray direction.
// A scene without a background function is black.
func (s *Scene) BackgroundColor(direction core.Vec3) core.Vec3 {
	if s.Background == nil {
		return core.Vec3{}
	}
	return s.Background(direction)
}

// ConstantBackground returns a background function that ignores the ray direction
func ConstantBackground(color core.Vec3) func(core.Vec3) core.Vec3 {
	return func(core.Vec3) core.Vec3 {
		return color
	}
}

// GradientBackground blends from bottomColor to topColor by the direction's height
func GradientBackground(topColor, bottomColor core.Vec3) func(core.Vec3) core.Vec3 {
	return func(direction core.Vec3) core.Vec3 {
		t := 0.5 * (direction.Normalize().Y + 1.0)
		return bottomColor.Lerp(topColor, t)
	}
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.World.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, looking through wrappers and boxes
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.Box3D:
		return len(obj.Faces())
	case *geometry.FlipFace:
		return countPrimitivesInShape(obj.Shape)
	case *geometry.ShapeList:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitivesInShape(child)
		}
		return count
	default:
		return 1
	}
}
