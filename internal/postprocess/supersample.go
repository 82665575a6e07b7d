// Package postprocess resamples supersampled renders down to their output
// size.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled render to w×h with Catmull-Rom
// filtering. Canvas renders are opaque, so the filter runs on the NRGBA
// pixels directly; ringing past the 0..255 range is clamped by the scaler.
// Images already at or below the target are returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
