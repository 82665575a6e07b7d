// Package canvas is the pixel buffer the demo programs draw into, plus its
// image encoders.
package canvas

import (
	"fmt"
	"image"
)

// Canvas holds linear colors row-major, len(Pixels) = Width*Height.
// Index (x, y) maps to Pixels[y*Width+x]; y grows downward.
type Canvas struct {
	Width  int
	Height int
	Pixels []Color
}

// New allocates a black canvas.
func New(w, h int) *Canvas {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("canvas: negative size %dx%d", w, h))
	}
	return &Canvas{
		Width:  w,
		Height: h,
		Pixels: make([]Color, w*h),
	}
}

func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

func (c *Canvas) At(x, y int) Color { return c.Pixels[y*c.Width+x] }

func (c *Canvas) Set(x, y int, col Color) { c.Pixels[y*c.Width+x] = col }

// SetSafe writes the pixel only when (x, y) lies on the canvas.
func (c *Canvas) SetSafe(x, y int, col Color) bool {
	if !c.InBounds(x, y) {
		return false
	}
	c.Set(x, y, col)
	return true
}

// Fill paints every pixel.
func (c *Canvas) Fill(col Color) {
	for i := range c.Pixels {
		c.Pixels[i] = col
	}
}

// Image converts the canvas to an opaque 8-bit NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		off := y * img.Stride
		for x := 0; x < c.Width; x++ {
			p := c.At(x, y).NRGBA()
			i := off + x*4
			img.Pix[i] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = p.A
		}
	}
	return img
}

// FromImage builds a canvas from any image, dropping alpha.
func FromImage(src image.Image) *Canvas {
	b := src.Bounds()
	c := New(b.Dx(), b.Dy())
	nrgba := toNRGBA(src)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			i := nrgba.PixOffset(b.Min.X+x, b.Min.Y+y)
			c.Set(x, y, Color{
				float64(nrgba.Pix[i]) / 255,
				float64(nrgba.Pix[i+1]) / 255,
				float64(nrgba.Pix[i+2]) / 255,
			})
		}
	}
	return c
}
