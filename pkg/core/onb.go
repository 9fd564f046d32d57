package core

import "math"

// ONB is an orthonormal basis with W aligned to a surface normal.
// The frame is right-handed: U × V = W.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds a local frame around the unit normal n
func NewONB(n Vec3) ONB {
	w := n.Normalize()

	// Pick a helper axis that is not nearly parallel to w
	a := XAxis()
	if math.Abs(w.X) > 0.9 {
		a = YAxis()
	}

	v := w.Cross(a).Normalize()
	u := v.Cross(w)
	return ONB{U: u, V: v, W: w}
}

// Local maps a vector expressed in the local frame into world space
func (b ONB) Local(a Vec3) Vec3 {
	return b.U.Multiply(a.X).Add(b.V.Multiply(a.Y)).Add(b.W.Multiply(a.Z))
}
