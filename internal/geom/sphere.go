package geom

import "trtc/internal/mathutil"

// Sphere is the unit sphere at the origin of its own object space. Transform
// maps object space to world space; intersection never moves the sphere, it
// moves the ray by the inverse.
type Sphere struct {
	Transform mathutil.Mat4
}

// NewSphere returns a sphere with the identity transform.
func NewSphere() *Sphere {
	return &Sphere{Transform: mathutil.Mat4Identity()}
}

func NewSphereWithTransform(m mathutil.Mat4) *Sphere {
	return &Sphere{Transform: m}
}

func (s *Sphere) SetTransform(m mathutil.Mat4) { s.Transform = m }

// LocalRay converts a world-space ray into object space. It returns false
// when the transform cannot be inverted.
func (s *Sphere) LocalRay(r Ray) (Ray, bool) {
	if s.Transform.IsIdentity() {
		return r, true
	}
	inv, ok := s.Transform.Inverse()
	if !ok {
		return Ray{}, false
	}
	return r.Transform(inv), true
}
