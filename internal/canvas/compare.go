package canvas

import (
	"errors"
	"fmt"
)

var ErrSizeMismatch = errors.New("canvas: size mismatch")

// Mismatches counts the pixels whose 8-bit encodings differ.
func Mismatches(a, b *Canvas) (int, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.Width, a.Height, b.Width, b.Height)
	}
	n := 0
	for i := range a.Pixels {
		if a.Pixels[i].NRGBA() != b.Pixels[i].NRGBA() {
			n++
		}
	}
	return n, nil
}
