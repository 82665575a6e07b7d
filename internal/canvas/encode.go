package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// Format selects an output codec.
type Format int

const (
	PNG Format = iota
	WebP
	TGA
	BMP
)

var ErrUnknownFormat = errors.New("canvas: unknown image format")

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case WebP:
		return "webp"
	case TGA:
		return "tga"
	case BMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the codec from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	case ".tga":
		return TGA, nil
	case ".bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Encode writes img in the given format. WebP output is lossless VP8L.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return ErrUnknownFormat
}

// Save writes the canvas to path, choosing the codec by extension.
func (c *Canvas) Save(path string) error {
	return SaveImage(path, c.Image())
}

// SaveImage writes any image to path, choosing the codec by extension.
// Parent directories are created as needed.
func SaveImage(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("canvas: save %s: %w", path, err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("canvas: encode %s %s: %w", f, path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}
