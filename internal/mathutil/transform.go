package mathutil

import "math"

// Translation moves points by (x, y, z). Free vectors are unaffected.
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

func Scaling(x, y, z float64) Mat4 {
	return Mat4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation around the X axis. Angle in radians.
func RotationX(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation around the Y axis.
func RotationY(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation around the Z axis.
func RotationZ(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing moves each coordinate in proportion to the other two: xy is the
// amount x moves per unit of y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Mat4 {
	return Mat4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// The fluent helpers left-multiply the new transform onto m, so
//
//	Mat4Identity().RotateX(a).Scale(5, 5, 5).Translate(10, 5, 7)
//
// rotates first and translates last when applied to a tuple.

func (m Mat4) Translate(x, y, z float64) Mat4 { return Translation(x, y, z).Mul4(m) }
func (m Mat4) Scale(x, y, z float64) Mat4     { return Scaling(x, y, z).Mul4(m) }
func (m Mat4) RotateX(a float64) Mat4         { return RotationX(a).Mul4(m) }
func (m Mat4) RotateY(a float64) Mat4         { return RotationY(a).Mul4(m) }
func (m Mat4) RotateZ(a float64) Mat4         { return RotationZ(a).Mul4(m) }

func (m Mat4) Shear(xy, xz, yx, yz, zx, zy float64) Mat4 {
	return Shearing(xy, xz, yx, yz, zx, zy).Mul4(m)
}
