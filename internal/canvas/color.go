package canvas

import (
	"image/color"
	"math"

	"trtc/internal/mathutil"
)

// Color is a linear RGB triple. Channels are nominally in [0, 1] but are
// not clamped until the color is written out.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
)

func (a Color) Add(b Color) Color { return Color{a.R + b.R, a.G + b.G, a.B + b.B} }
func (a Color) Sub(b Color) Color { return Color{a.R - b.R, a.G - b.G, a.B - b.B} }

func (c Color) Scale(s float64) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Mul is the Hadamard (per-channel) product.
func (a Color) Mul(b Color) Color { return Color{a.R * b.R, a.G * b.G, a.B * b.B} }

func (a Color) Equal(b Color) bool {
	return mathutil.EqualApprox(a.R, b.R) &&
		mathutil.EqualApprox(a.G, b.G) &&
		mathutil.EqualApprox(a.B, b.B)
}

// NRGBA scales each channel to 0..255 with rounding and clamping. Alpha is
// always opaque.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

// FromNRGBA is the inverse of NRGBA up to quantization. Alpha is dropped.
func FromNRGBA(c color.NRGBA) Color {
	return Color{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

func to8(v float64) uint8 {
	x := math.Round(v * 255)
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
