package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RectAxis selects the plane an axis-aligned rectangle lies in
type RectAxis int

const (
	AxisXY RectAxis = iota // z = k, normal +Z
	AxisXZ                 // y = k, normal +Y
	AxisYZ                 // x = k, normal +X
)

func (a RectAxis) String() string {
	switch a {
	case AxisXY:
		return "XY"
	case AxisXZ:
		return "XZ"
	case AxisYZ:
		return "YZ"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle [X0,X1]×[Y0,Y1] on the plane at offset K.
// X and Y name the first and second in-plane axes of the orientation
// (XZ: x and z, YZ: y and z).
type Rect struct {
	X0, X1   float64
	Y0, Y1   float64
	K        float64
	Axis     RectAxis
	Material material.Material
}

// NewRect creates a new axis-aligned rectangle
func NewRect(x0, x1, y0, y1, k float64, axis RectAxis, mat material.Material) *Rect {
	return &Rect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Axis: axis, Material: mat}
}

func NewRectXY(x0, x1, y0, y1, k float64, mat material.Material) *Rect {
	return NewRect(x0, x1, y0, y1, k, AxisXY, mat)
}

func NewRectXZ(x0, x1, z0, z1, k float64, mat material.Material) *Rect {
	return NewRect(x0, x1, z0, z1, k, AxisXZ, mat)
}

func NewRectYZ(y0, y1, z0, z1, k float64, mat material.Material) *Rect {
	return NewRect(y0, y1, z0, z1, k, AxisYZ, mat)
}

// toCanonical permutes a vector so the rectangle lies on the XY plane at z = K
func (r *Rect) toCanonical(v core.Vec3) core.Vec3 {
	switch r.Axis {
	case AxisXZ:
		return core.NewVec3(v.X, v.Z, v.Y)
	case AxisYZ:
		return core.NewVec3(v.Y, v.Z, v.X)
	default:
		return v
	}
}

// Normal returns the fixed outward normal for the rectangle's orientation
func (r *Rect) Normal() core.Vec3 {
	switch r.Axis {
	case AxisXZ:
		return core.YAxis()
	case AxisYZ:
		return core.XAxis()
	default:
		return core.ZAxis()
	}
}

// Hit tests if a ray intersects with the rectangle
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	origin := r.toCanonical(ray.Origin)
	direction := r.toCanonical(ray.Direction)

	// Parallel rays give ±Inf or NaN, both rejected by the range check
	t := (r.K - origin.Z) / direction.Z
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	x := origin.X + t*direction.X
	y := origin.Y + t*direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   r.Normal(),
		Material: r.Material,
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (y-r.Y0)/(r.Y1-r.Y0)),
	}, true
}
