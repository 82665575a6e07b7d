// Package demo holds the scenes drawn by the cmd programs: a projectile
// trajectory, a clock face built from transforms, and a sphere silhouette.
package demo

import (
	"math"

	"trtc/internal/canvas"
	"trtc/internal/mathutil"
)

// Environment is the constant acceleration acting on a projectile each tick.
type Environment struct {
	Gravity mathutil.Vec4
	Wind    mathutil.Vec4
}

type Projectile struct {
	Position mathutil.Vec4 // point
	Velocity mathutil.Vec4 // vector
}

// Tick advances the projectile by one time step.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Trajectory returns the starting position followed by every position
// reached while the projectile stays above y = 0, capped at maxTicks steps.
func Trajectory(env Environment, p Projectile, maxTicks int) []mathutil.Vec4 {
	points := []mathutil.Vec4{p.Position}
	for i := 0; i < maxTicks; i++ {
		p = Tick(env, p)
		if p.Position.Y() <= 0 {
			break
		}
		points = append(points, p.Position)
	}
	return points
}

// PlotTrajectory draws world points with y pointing up onto the canvas.
// Points that fall off the canvas are skipped. It returns the number plotted.
func PlotTrajectory(c *canvas.Canvas, points []mathutil.Vec4, col canvas.Color) int {
	n := 0
	for _, p := range points {
		x := int(math.Floor(p.X()))
		y := c.Height - 1 - int(math.Floor(p.Y()))
		if c.SetSafe(x, y, col) {
			n++
		}
	}
	return n
}
