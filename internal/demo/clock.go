package demo

import (
	"math"

	"trtc/internal/canvas"
	"trtc/internal/mathutil"
)

// ClockFace returns the positions of the hour marks of a clock centered on a
// size x size canvas, with radius 3/8 of the size. Mark 0 lies at 3 o'clock
// and the marks advance counter-clockwise in world space.
func ClockFace(size, hours int) []mathutil.Vec4 {
	if hours <= 0 {
		return nil
	}
	center := float64(size) / 2
	radius := float64(size) * 3 / 8
	origin := mathutil.Point(0, 0, 0)

	marks := make([]mathutil.Vec4, hours)
	for k := range marks {
		theta := float64(k) * 2 * math.Pi / float64(hours)
		m := mathutil.Mat4Identity().
			Translate(radius, 0, 0).
			RotateZ(theta).
			Translate(center, center, 0)
		marks[k] = m.MulVec(origin)
	}
	return marks
}

// PlotPoints draws points in canvas coordinates, skipping any off the canvas.
func PlotPoints(c *canvas.Canvas, points []mathutil.Vec4, col canvas.Color) int {
	n := 0
	for _, p := range points {
		if c.SetSafe(int(math.Floor(p.X())), int(math.Floor(p.Y())), col) {
			n++
		}
	}
	return n
}
