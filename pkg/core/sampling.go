package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; each worker tile owns one.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomVec3 returns a point uniformly distributed in the unit cube [0,1)^3
func RandomVec3(sampler Sampler) Vec3 {
	return sampler.Get3D()
}

// RandomFull returns a vector whose three components share a single uniform draw
func RandomFull(sampler Sampler) Vec3 {
	return Full(sampler.Get1D())
}

// RandomVec3Limit returns a point uniformly distributed in [min, max)^3
func RandomVec3Limit(sampler Sampler, min, max float64) Vec3 {
	p := sampler.Get3D()
	return Vec3{
		X: min + p.X*(max-min),
		Y: min + p.Y*(max-min),
		Z: min + p.Z*(max-min),
	}
}

// RandomInUnitSphere generates a random point strictly inside the unit sphere
// by rejection sampling the cube [-1,1]^3
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := RandomVec3Limit(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted direction on the hemisphere around +Z.
// Use ONB.Local to orient it around a surface normal.
func RandomCosineDirection(sampler Sampler) Vec3 {
	sample := sampler.Get2D()
	phi := 2.0 * math.Pi * sample.X
	r2 := sample.Y
	r := math.Sqrt(r2)

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	z := math.Sqrt(1.0 - r2)
	return NewVec3(x, y, z)
}
