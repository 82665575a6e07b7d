// Package geom holds rays, the unit sphere primitive and the
// ray–sphere intersection routines built on mathutil.
package geom

import "trtc/internal/mathutil"

// Ray is a half-line starting at Origin (a point) running along Direction
// (a free vector). Direction is not required to be unit length.
type Ray struct {
	Origin    mathutil.Vec4
	Direction mathutil.Vec4
}

func NewRay(origin, direction mathutil.Vec4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns Origin + Direction*t.
func (r Ray) Position(t float64) mathutil.Vec4 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform applies m to both the origin and the direction.
func (r Ray) Transform(m mathutil.Mat4) Ray {
	return Ray{Origin: m.MulVec(r.Origin), Direction: m.MulVec(r.Direction)}
}
