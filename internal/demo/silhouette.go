package demo

import (
	"trtc/internal/canvas"
	"trtc/internal/geom"
	"trtc/internal/mathutil"
)

// SilhouetteScene casts one ray per pixel from RayOrigin through a square
// wall of side WallSize at z = WallZ. Pixels whose ray hits Sphere get Color.
type SilhouetteScene struct {
	Sphere    *geom.Sphere
	RayOrigin mathutil.Vec4
	WallZ     float64
	WallSize  float64
	Color     canvas.Color
}

// DefaultSilhouette is a red sphere squashed along x and sheared, viewed
// from z = -5.
func DefaultSilhouette() *SilhouetteScene {
	m := mathutil.Mat4Identity().
		Scale(0.5, 1, 1).
		Shear(1, 0, 0, 0, 0, 0)
	return &SilhouetteScene{
		Sphere:    geom.NewSphereWithTransform(m),
		RayOrigin: mathutil.Point(0, 0, -5),
		WallZ:     10,
		WallSize:  7,
		Color:     canvas.Red,
	}
}

// TracePixel reports whether the ray through pixel (x, y) of a size x size
// image hits the sphere. Pixel (0, 0) is the top-left corner of the wall.
func (s *SilhouetteScene) TracePixel(x, y, size int) bool {
	pixel := s.WallSize / float64(size)
	half := s.WallSize / 2

	target := mathutil.Point(-half+pixel*float64(x), half-pixel*float64(y), s.WallZ)
	dir, ok := target.Sub(s.RayOrigin).TryNormalize()
	if !ok {
		return false
	}
	xs := geom.Intersect(s.Sphere, geom.NewRay(s.RayOrigin, dir))
	_, hit := geom.Hit(xs)
	return hit
}

// RenderRow traces row y of a square canvas and returns the number of hits.
// Rows touch disjoint pixels, so distinct rows may render concurrently.
func (s *SilhouetteScene) RenderRow(c *canvas.Canvas, y int) int {
	hits := 0
	for x := 0; x < c.Width; x++ {
		if s.TracePixel(x, y, c.Width) {
			c.Set(x, y, s.Color)
			hits++
		}
	}
	return hits
}
