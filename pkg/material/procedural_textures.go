package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture is a 3D checker pattern evaluated on the world-space hit point,
// so it does not depend on the surface parametrization
type CheckerTexture struct {
	Odd  ColorSource
	Even ColorSource
	Freq float64 // Angular frequency of the sine product
}

// NewCheckerTexture creates a checker texture from two sub-textures
func NewCheckerTexture(odd, even ColorSource, freq float64) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Freq: freq}
}

// NewSolidCheckerTexture creates a checker texture alternating between two colors
func NewSolidCheckerTexture(odd, even core.Vec3, freq float64) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(odd), NewSolidColor(even), freq)
}

// Evaluate picks Odd where sin(fx)·sin(fy)·sin(fz) is negative and Even otherwise
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Freq*point.X) * math.Sin(c.Freq*point.Y) * math.Sin(c.Freq*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
