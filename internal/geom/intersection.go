package geom

import (
	"math"

	"trtc/internal/mathutil"
)

// Intersection records where along a ray an object was struck.
// Object is a shared handle, so an Intersection can outlive the call that
// produced it.
type Intersection struct {
	T      float64
	Object *Sphere
}

func NewIntersection(t float64, s *Sphere) Intersection {
	return Intersection{T: t, Object: s}
}

// Equal compares t exactly and the object by identity.
func (i Intersection) Equal(o Intersection) bool {
	return i.T == o.T && i.Object == o.Object
}

// Intersections keeps insertion order; nothing sorts it.
type Intersections []Intersection

func NewIntersections(xs ...Intersection) Intersections {
	return append(Intersections(nil), xs...)
}

func (xs *Intersections) Add(i Intersection) { *xs = append(*xs, i) }

func (xs Intersections) Count() int { return len(xs) }

func (xs Intersections) At(i int) Intersection { return xs[i] }

// Intersect returns both roots of the ray–sphere quadratic in ascending
// order, or nothing on a miss. A tangent ray yields two equal entries. A
// sphere with a singular transform cannot be hit.
func Intersect(s *Sphere, r Ray) Intersections {
	local, ok := s.LocalRay(r)
	if !ok {
		return nil
	}
	sphereToRay := local.Origin.Sub(mathutil.Point(0, 0, 0))

	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return Intersections{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}

// Hit picks the intersection with the smallest strictly positive t. Hits at
// t == 0, behind the origin or NaN (from a zero-length direction) are never
// chosen. Ties go to the earliest entry.
func Hit(xs Intersections) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if !(x.T > 0) {
			continue
		}
		if !found || x.T < best.T {
			best, found = x, true
		}
	}
	return best, found
}
