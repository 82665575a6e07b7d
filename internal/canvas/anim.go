package canvas

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// SaveAnimatedWebP writes frames as a looping lossless WebP animation, each
// frame shown for delayMs milliseconds.
func SaveAnimatedWebP(path string, frames []*Canvas, delayMs uint) error {
	if len(frames) == 0 {
		return fmt.Errorf("canvas: save %s: no frames", path)
	}
	ani := &nativewebp.Animation{
		Images:    make([]image.Image, len(frames)),
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
		LoopCount: 0,
	}
	for i, fr := range frames {
		ani.Images[i] = fr.Image()
		ani.Durations[i] = delayMs
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	if err := nativewebp.EncodeAll(f, ani, nil); err != nil {
		f.Close()
		return fmt.Errorf("canvas: encode animation %s: %w", path, err)
	}
	return f.Close()
}
