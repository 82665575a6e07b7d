package main

import (
	"flag"
	"fmt"
	"os"

	"trtc/internal/canvas"
	"trtc/internal/demo"
)

func main() {
	size := flag.Int("size", 400, "Canvas width and height in pixels")
	output := flag.String("o", "clock.png", "Output image")
	anim := flag.Bool("anim", false, "Write an animated WebP that adds one hour mark per frame")
	flag.Parse()

	if *size <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -size must be positive")
		os.Exit(1)
	}

	marks := demo.ClockFace(*size, 12)

	if !*anim {
		c := canvas.New(*size, *size)
		demo.PlotPoints(c, marks, canvas.White)
		if err := c.Save(*output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Clock: %s\n", *output)
		return
	}

	frames := make([]*canvas.Canvas, len(marks))
	for k := range frames {
		frames[k] = canvas.New(*size, *size)
		demo.PlotPoints(frames[k], marks[:k+1], canvas.White)
	}
	if err := canvas.SaveAnimatedWebP(*output, frames, 250); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Clock animation (%d frames): %s\n", len(frames), *output)
}
