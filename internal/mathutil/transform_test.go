package mathutil

import (
	"math"
	"testing"
)

func TestTranslation(t *testing.T) {
	tr := Translation(5, -3, 2)
	if got := tr.MulVec(Point(-3, 4, 5)); !got.Equal(Point(2, 1, 7)) {
		t.Fatalf("translate point = %+v", got)
	}
	if got := tr.MustInverse().MulVec(Point(-3, 4, 5)); !got.Equal(Point(-8, 7, 3)) {
		t.Fatalf("inverse translate point = %+v", got)
	}
	v := Vector(-3, 4, 5)
	if got := tr.MulVec(v); got != v {
		t.Fatalf("translation moved a vector: %+v", got)
	}
}

func TestScaling(t *testing.T) {
	s := Scaling(2, 3, 4)
	if got := s.MulVec(Point(-4, 6, 8)); !got.Equal(Point(-8, 18, 32)) {
		t.Fatalf("scale point = %+v", got)
	}
	if got := s.MulVec(Vector(-4, 6, 8)); !got.Equal(Vector(-8, 18, 32)) {
		t.Fatalf("scale vector = %+v", got)
	}
	if got := s.MustInverse().MulVec(Vector(-4, 6, 8)); !got.Equal(Vector(-2, 2, 2)) {
		t.Fatalf("inverse scale vector = %+v", got)
	}
	if got := Scaling(-1, 1, 1).MulVec(Point(2, 3, 4)); !got.Equal(Point(-2, 3, 4)) {
		t.Fatalf("reflection = %+v", got)
	}
}

func TestRotations(t *testing.T) {
	h := math.Sqrt2 / 2
	tests := []struct {
		name string
		m    Mat4
		p    Vec4
		want Vec4
	}{
		{"x half", RotationX(math.Pi / 4), Point(0, 1, 0), Point(0, h, h)},
		{"x full", RotationX(math.Pi / 2), Point(0, 1, 0), Point(0, 0, 1)},
		{"x inverse", RotationX(math.Pi / 4).MustInverse(), Point(0, 1, 0), Point(0, h, -h)},
		{"y half", RotationY(math.Pi / 4), Point(0, 0, 1), Point(h, 0, h)},
		{"y full", RotationY(math.Pi / 2), Point(0, 0, 1), Point(1, 0, 0)},
		{"z half", RotationZ(math.Pi / 4), Point(0, 1, 0), Point(-h, h, 0)},
		{"z full", RotationZ(math.Pi / 2), Point(0, 1, 0), Point(-1, 0, 0)},
		{"degrees", RotationZ(Deg2Rad(90)), Point(0, 1, 0), Point(-1, 0, 0)},
	}
	for _, tc := range tests {
		if got := tc.m.MulVec(tc.p); !got.Equal(tc.want) {
			t.Fatalf("%s: got %+v want %+v", tc.name, got, tc.want)
		}
	}
}

func TestRotationIsOrthonormal(t *testing.T) {
	r := RotationX(0.4).Mul4(RotationY(-1.1)).Mul4(RotationZ(2.3))
	if p := r.Transpose().Mul4(r); !p.Equal(Mat4Identity()) {
		t.Fatalf("R^T R != I: %+v", p)
	}
}

func TestShearing(t *testing.T) {
	p := Point(2, 3, 4)
	tests := []struct {
		m    Mat4
		want Vec4
	}{
		{Shearing(1, 0, 0, 0, 0, 0), Point(5, 3, 4)},
		{Shearing(0, 1, 0, 0, 0, 0), Point(6, 3, 4)},
		{Shearing(0, 0, 1, 0, 0, 0), Point(2, 5, 4)},
		{Shearing(0, 0, 0, 1, 0, 0), Point(2, 7, 4)},
		{Shearing(0, 0, 0, 0, 1, 0), Point(2, 3, 6)},
		{Shearing(0, 0, 0, 0, 0, 1), Point(2, 3, 7)},
	}
	for i, tc := range tests {
		if got := tc.m.MulVec(p); !got.Equal(tc.want) {
			t.Fatalf("case %d: got %+v want %+v", i, got, tc.want)
		}
	}
}

func TestTransformSequence(t *testing.T) {
	p := Point(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	p2 := a.MulVec(p)
	if !p2.Equal(Point(1, -1, 0)) {
		t.Fatalf("after rotation: %+v", p2)
	}
	p3 := b.MulVec(p2)
	if !p3.Equal(Point(5, -5, 0)) {
		t.Fatalf("after scaling: %+v", p3)
	}
	p4 := c.MulVec(p3)
	if !p4.Equal(Point(15, 0, 7)) {
		t.Fatalf("after translation: %+v", p4)
	}

	// Chained products apply right to left.
	if got := c.Mul4(b).Mul4(a).MulVec(p); !got.Equal(Point(15, 0, 7)) {
		t.Fatalf("C×B×A×p = %+v", got)
	}
}

func TestFluentTransformOrder(t *testing.T) {
	p := Point(1, 0, 1)
	m := Mat4Identity().
		RotateX(math.Pi/2).
		Scale(5, 5, 5).
		Translate(10, 5, 7)
	if got := m.MulVec(p); !got.Equal(Point(15, 0, 7)) {
		t.Fatalf("fluent chain = %+v", got)
	}

	// Right-multiplying in chain order would apply translation first.
	wrong := Mat4Identity().Mul4(RotationX(math.Pi / 2)).Mul4(Scaling(5, 5, 5)).Mul4(Translation(10, 5, 7))
	if wrong.MulVec(p).Equal(Point(15, 0, 7)) {
		t.Fatal("right-multiplied chain should not match the fluent result")
	}

	sh := Mat4Identity().Scale(0.5, 1, 1).Shear(1, 0, 0, 0, 0, 0)
	if want := Shearing(1, 0, 0, 0, 0, 0).Mul4(Scaling(0.5, 1, 1)); !sh.Equal(want) {
		t.Fatalf("scale+shear = %+v", sh)
	}
	ry := Mat4Identity().RotateY(math.Pi / 2)
	if got := ry.MulVec(Point(0, 0, 1)); !got.Equal(Point(1, 0, 0)) {
		t.Fatalf("RotateY = %+v", got)
	}
	rz := Mat4Identity().RotateZ(math.Pi / 2)
	if got := rz.MulVec(Point(0, 1, 0)); !got.Equal(Point(-1, 0, 0)) {
		t.Fatalf("RotateZ = %+v", got)
	}
}
