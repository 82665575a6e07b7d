package geom

import (
	"math"
	"testing"

	"trtc/internal/mathutil"
)

func TestIntersectSphere(t *testing.T) {
	tests := []struct {
		name   string
		origin mathutil.Vec4
		want   []float64
	}{
		{"two points", mathutil.Point(0, 0, -5), []float64{4, 6}},
		{"tangent", mathutil.Point(0, 1, -5), []float64{5, 5}},
		{"miss", mathutil.Point(0, 2, -5), nil},
		{"inside", mathutil.Point(0, 0, 0), []float64{-1, 1}},
		{"behind", mathutil.Point(0, 0, 5), []float64{-6, -4}},
	}
	for _, tc := range tests {
		s := NewSphere()
		xs := Intersect(s, NewRay(tc.origin, mathutil.Vector(0, 0, 1)))
		if xs.Count() != len(tc.want) {
			t.Fatalf("%s: count = %d, want %d", tc.name, xs.Count(), len(tc.want))
		}
		for i, w := range tc.want {
			if xs.At(i).T != w {
				t.Fatalf("%s: xs[%d].t = %g, want %g", tc.name, i, xs.At(i).T, w)
			}
			if xs.At(i).Object != s {
				t.Fatalf("%s: xs[%d] does not reference the sphere", tc.name, i)
			}
		}
	}
}

func TestIntersectTransformedSphere(t *testing.T) {
	r := NewRay(mathutil.Point(0, 0, -5), mathutil.Vector(0, 0, 1))

	s := NewSphere()
	s.SetTransform(mathutil.Scaling(2, 2, 2))
	xs := Intersect(s, r)
	if xs.Count() != 2 || xs[0].T != 3 || xs[1].T != 7 {
		t.Fatalf("scaled sphere: %+v", xs)
	}

	moved := NewSphereWithTransform(mathutil.Translation(5, 0, 0))
	if xs := Intersect(moved, r); xs.Count() != 0 {
		t.Fatalf("translated sphere should be missed: %+v", xs)
	}

	// The ray is moved into object space, the sphere's transform is untouched.
	if !s.Transform.Equal(mathutil.Scaling(2, 2, 2)) {
		t.Fatalf("sphere transform changed: %+v", s.Transform)
	}
}

func TestIntersectSingularTransform(t *testing.T) {
	s := NewSphereWithTransform(mathutil.Scaling(0, 1, 1))
	r := NewRay(mathutil.Point(0, 0, -5), mathutil.Vector(0, 0, 1))
	if xs := Intersect(s, r); xs.Count() != 0 {
		t.Fatalf("singular transform should yield no intersections: %+v", xs)
	}
	if _, ok := s.LocalRay(r); ok {
		t.Fatal("LocalRay should fail for a singular transform")
	}
}

func TestLocalRay(t *testing.T) {
	r := NewRay(mathutil.Point(1, 2, 3), mathutil.Vector(0, 1, 0))
	if got, ok := NewSphere().LocalRay(r); !ok || got != r {
		t.Fatalf("identity LocalRay = %+v, %v", got, ok)
	}
	s := NewSphereWithTransform(mathutil.Translation(3, 4, 5))
	got, ok := s.LocalRay(r)
	if !ok || !got.Origin.Equal(mathutil.Point(-2, -2, -2)) || !got.Direction.Equal(r.Direction) {
		t.Fatalf("translated LocalRay = %+v, %v", got, ok)
	}
}

func TestIntersectZeroDirection(t *testing.T) {
	r := NewRay(mathutil.Point(0, 0, -5), mathutil.Vector(0, 0, 0))
	xs := Intersect(NewSphere(), r)
	if _, ok := Hit(xs); ok {
		t.Fatalf("a zero-length direction must not produce a hit: %+v", xs)
	}
	for _, x := range xs {
		if !math.IsNaN(x.T) {
			t.Fatalf("expected NaN roots, got %+v", xs)
		}
	}
}

func TestDefaultSphere(t *testing.T) {
	if s := NewSphere(); s.Transform != mathutil.Mat4Identity() {
		t.Fatalf("default transform = %+v", s.Transform)
	}
}

func TestIntersectionIdentity(t *testing.T) {
	a, b := NewSphere(), NewSphere()
	i := NewIntersection(3.5, a)
	if i.T != 3.5 || i.Object != a {
		t.Fatalf("intersection fields: %+v", i)
	}
	if !i.Equal(NewIntersection(3.5, a)) {
		t.Fatal("same t and sphere should be equal")
	}
	// Structurally identical spheres are still different objects.
	if i.Equal(NewIntersection(3.5, b)) {
		t.Fatal("intersections on different spheres compared equal")
	}
	if i.Equal(NewIntersection(3.6, a)) {
		t.Fatal("intersections with different t compared equal")
	}
}

func TestAggregateIntersections(t *testing.T) {
	s := NewSphere()
	var xs Intersections
	xs.Add(NewIntersection(1, s))
	xs.Add(NewIntersection(2, s))
	if xs.Count() != 2 || xs.At(0).T != 1 || xs.At(1).T != 2 {
		t.Fatalf("aggregate = %+v", xs)
	}
	ys := NewIntersections(NewIntersection(2, s), NewIntersection(1, s))
	if ys.At(0).T != 2 {
		t.Fatal("intersections must keep insertion order")
	}
}

func TestHit(t *testing.T) {
	s := NewSphere()
	mk := func(ts ...float64) Intersections {
		var xs Intersections
		for _, v := range ts {
			xs.Add(NewIntersection(v, s))
		}
		return xs
	}
	tests := []struct {
		name string
		xs   Intersections
		want float64
		ok   bool
	}{
		{"all positive", mk(1, 2), 1, true},
		{"some negative", mk(-1, 1), 1, true},
		{"all negative", mk(-2, -1), 0, false},
		{"lowest non-negative", mk(5, 7, -3, 2), 2, true},
		{"zero excluded", mk(0, 3), 3, true},
		{"only zero", mk(0), 0, false},
		{"empty", nil, 0, false},
	}
	for _, tc := range tests {
		h, ok := Hit(tc.xs)
		if ok != tc.ok {
			t.Fatalf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
		}
		if ok && h.T != tc.want {
			t.Fatalf("%s: hit t = %g, want %g", tc.name, h.T, tc.want)
		}
	}

	xs := mk(5, 7, -3, 2)
	h, _ := Hit(xs)
	if !h.Equal(xs.At(3)) {
		t.Fatalf("hit should be the t=2 entry, got %+v", h)
	}
}

func TestHitTieKeepsFirst(t *testing.T) {
	a, b := NewSphere(), NewSphere()
	xs := NewIntersections(NewIntersection(2, a), NewIntersection(2, b))
	h, ok := Hit(xs)
	if !ok || h.Object != a {
		t.Fatalf("tie should resolve to the first entry, got %+v", h)
	}
}
