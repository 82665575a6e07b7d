package main

import (
	"flag"
	"fmt"
	"os"

	"trtc/internal/canvas"
	"trtc/internal/demo"
	"trtc/internal/mathutil"
)

func main() {
	plot := flag.Bool("plot", false, "Plot the trajectory to an image instead of printing it")
	output := flag.String("o", "out.png", "Output image for -plot")
	flag.Parse()

	env := demo.Environment{
		Gravity: mathutil.Vector(0, -0.1, 0),
		Wind:    mathutil.Vector(-0.01, 0, 0),
	}

	if !*plot {
		p := demo.Projectile{
			Position: mathutil.Point(0, 1, 0),
			Velocity: mathutil.Vector(1, 1, 0).Normalize(),
		}
		for i, pos := range demo.Trajectory(env, p, 10000) {
			fmt.Printf("%3d: x=%.3f y=%.3f\n", i, pos.X(), pos.Y())
		}
		return
	}

	p := demo.Projectile{
		Position: mathutil.Point(0, 1, 0),
		Velocity: mathutil.Vector(1, 1.8, 0).Normalize().Scale(11.25),
	}
	points := demo.Trajectory(env, p, 10000)

	c := canvas.New(900, 550)
	n := demo.PlotTrajectory(c, points, canvas.Red)
	if err := c.Save(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Plotted %d/%d positions to %s\n", n, len(points), *output)
}
