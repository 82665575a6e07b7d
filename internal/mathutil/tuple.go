package mathutil

import "math"

// Vec2 is a 2-component vector (value type, stack-allocated).
type Vec2 [2]float64

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a[0] + b[0], a[1] + b[1]} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a[0] - b[0], a[1] - b[1]} }
func (v Vec2) Neg() Vec2       { return Vec2{-v[0], -v[1]} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v[0] * s, v[1] * s} }
func (v Vec2) Div(s float64) Vec2   { return Vec2{v[0] / s, v[1] / s} }

func (a Vec2) Dot(b Vec2) float64 { return a[0]*b[0] + a[1]*b[1] }

func (v Vec2) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize divides v by its length. A zero vector yields NaN components.
func (v Vec2) Normalize() Vec2 { return v.Div(v.Len()) }

// TryNormalize is Normalize that reports false instead of producing NaN.
func (v Vec2) TryNormalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return v.Div(l), true
}

// Equal compares componentwise within Epsilon.
func (a Vec2) Equal(b Vec2) bool {
	return EqualApprox(a[0], b[0]) && EqualApprox(a[1], b[1])
}

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize divides v by its length. A zero vector yields NaN components.
func (v Vec3) Normalize() Vec3 { return v.Div(v.Len()) }

// TryNormalize is Normalize that reports false instead of producing NaN.
func (v Vec3) TryNormalize() (Vec3, bool) {
	l := v.Len()
	if l == 0 {
		return Vec3{}, false
	}
	return v.Div(l), true
}

func (a Vec3) Equal(b Vec3) bool {
	return EqualApprox(a[0], b[0]) && EqualApprox(a[1], b[1]) && EqualApprox(a[2], b[2])
}

// Vec4 is a homogeneous tuple. The fourth component w is 1 for a point and
// 0 for a free vector; arithmetic does not look at it.
type Vec4 [4]float64

// Point returns the tuple (x, y, z, 1).
func Point(x, y, z float64) Vec4 { return Vec4{x, y, z, 1} }

// Vector returns the tuple (x, y, z, 0).
func Vector(x, y, z float64) Vec4 { return Vec4{x, y, z, 0} }

func (v Vec4) X() float64 { return v[0] }
func (v Vec4) Y() float64 { return v[1] }
func (v Vec4) Z() float64 { return v[2] }
func (v Vec4) W() float64 { return v[3] }

// IsPoint and IsVector test the tag exactly; w is never computed, so no
// tolerance applies.
func (v Vec4) IsPoint() bool  { return v[3] == 1 }
func (v Vec4) IsVector() bool { return v[3] == 0 }

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (v Vec4) Neg() Vec4 { return Vec4{-v[0], -v[1], -v[2], -v[3]} }

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (v Vec4) Div(s float64) Vec4 {
	return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

func (a Vec4) Dot(b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Cross takes the 3D cross product of the xyz parts. The result is always a
// free vector (w = 0).
func (a Vec4) Cross(b Vec4) Vec4 {
	c := a.XYZ().Cross(b.XYZ())
	return Vector(c[0], c[1], c[2])
}

// Len is the Euclidean norm over all four components, w included.
func (v Vec4) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize divides v by its length. A zero vector yields NaN components.
func (v Vec4) Normalize() Vec4 { return v.Div(v.Len()) }

// TryNormalize is Normalize that reports false instead of producing NaN.
func (v Vec4) TryNormalize() (Vec4, bool) {
	l := v.Len()
	if l == 0 {
		return Vec4{}, false
	}
	return v.Div(l), true
}

// XYZ drops the homogeneous coordinate.
func (v Vec4) XYZ() Vec3 { return Vec3{v[0], v[1], v[2]} }

func (a Vec4) Equal(b Vec4) bool {
	return EqualApprox(a[0], b[0]) && EqualApprox(a[1], b[1]) &&
		EqualApprox(a[2], b[2]) && EqualApprox(a[3], b[3])
}
