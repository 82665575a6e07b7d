package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// Load decodes a PNG, JPEG, TGA, BMP or WebP file into a canvas. The codec
// comes from the file extension: tga registers an empty magic string with
// the image package, so image.Decode cannot be trusted to sniff.
func Load(path string) (*Canvas, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: load %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: read %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("canvas: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

func decoderFor(path string) (func(io.Reader) (image.Image, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode, nil
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	switch f {
	case PNG:
		return png.Decode, nil
	case WebP:
		return nativewebp.DecodeIgnoreAlphaFlag, nil
	case TGA:
		return tga.Decode, nil
	case BMP:
		return bmp.Decode, nil
	}
	return nil, ErrUnknownFormat
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha: draw and force opaque
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
			}
		}
	}
	return dst
}
