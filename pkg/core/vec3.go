package core

import (
	"fmt"
	"math"
	"strconv"
)

// nearZeroEpsilon is the per-component threshold used by NearZero
const nearZeroEpsilon = 1e-6

// Vec3 represents a 3D vector, point or linear RGB color
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Full returns a vector with all three components set to value
func Full(value float64) Vec3 {
	return Vec3{value, value, value}
}

// Zero returns the zero vector
func Zero() Vec3 { return Vec3{} }

// One returns the vector (1, 1, 1)
func One() Vec3 { return Vec3{1, 1, 1} }

func XAxis() Vec3 { return Vec3{1, 0, 0} }
func YAxis() Vec3 { return Vec3{0, 1, 0} }
func ZAxis() Vec3 { return Vec3{0, 0, 1} }

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// Callers must not pass a zero-length vector; the zero vector is returned in that case.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Lerp linearly interpolates from v towards target
func (v Vec3) Lerp(target Vec3, t float64) Vec3 {
	return v.Add(target.Subtract(v).Multiply(t))
}

// Sqrt returns the component-wise square root
func (v Vec3) Sqrt() Vec3 {
	return Vec3{math.Sqrt(v.X), math.Sqrt(v.Y), math.Sqrt(v.Z)}
}

// NearZero reports whether every component is within a small epsilon of zero
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < nearZeroEpsilon &&
		math.Abs(v.Y) < nearZeroEpsilon &&
		math.Abs(v.Z) < nearZeroEpsilon
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// Saturate clamps every component to [0, 1]
func (v Vec3) Saturate() Vec3 {
	return v.Clamp(0, 1)
}

// GammaCorrect encodes linear color values: x^(1/gamma)
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(v.X, invGamma),
		Y: math.Pow(v.Y, invGamma),
		Z: math.Pow(v.Z, invGamma),
	}
}

// Degamma decodes gamma-encoded color values back to linear: x^gamma
func (v Vec3) Degamma(gamma float64) Vec3 {
	return Vec3{
		X: math.Pow(v.X, gamma),
		Y: math.Pow(v.Y, gamma),
		Z: math.Pow(v.Z, gamma),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() float64 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

// ToRGB converts a color to 8-bit channels: clamp to [0,1], scale by 255.99, truncate.
func (v Vec3) ToRGB() [3]uint8 {
	c := v.Saturate()
	return [3]uint8{
		uint8(255.99 * c.X),
		uint8(255.99 * c.Y),
		uint8(255.99 * c.Z),
	}
}

// FromRGB builds a color from 8-bit channels
func FromRGB(r, g, b uint8) Vec3 {
	return Vec3{float64(r) / 255.0, float64(g) / 255.0, float64(b) / 255.0}
}

// FromHex parses a six digit hex color such as "ff8800" (an optional leading '#' is accepted)
func FromHex(hex string) (Vec3, error) {
	if len(hex) == 7 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return Vec3{}, fmt.Errorf("invalid hex color %q: want 6 digits", hex)
	}
	var rgb [3]uint8
	for i := range rgb {
		c, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Vec3{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		rgb[i] = uint8(c)
	}
	return FromRGB(rgb[0], rgb[1], rgb[2]), nil
}

// Equals checks exact component-wise equality
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Vec2 represents a 2D vector, used for texture coordinates and 2D samples
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
