// Package config loads render settings for the silhouette demo from a JSON
// file and merges them with command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"trtc/internal/mathutil"
)

// Config holds all configurable render settings.
type Config struct {
	// Output
	Output string `json:"output"`
	Report string `json:"report"`

	// Render settings
	Size        int `json:"size"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`

	// Scene
	WallZ      *float64        `json:"wall_z,omitempty"`
	WallSize   float64         `json:"wall_size"`
	RayOrigin  *[3]float64     `json:"ray_origin,omitempty"`
	Color      *[3]float64     `json:"color,omitempty"`
	Transforms []TransformStep `json:"transforms"`
}

// TransformStep is one entry of the sphere's transform chain, applied in
// file order. Rotation angles are in degrees.
type TransformStep struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

var ErrUnknownOp = errors.New("config: unknown transform op")

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output      string
	Report      string
	Size        int
	Supersample int
	Workers     int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Report != "" {
		c.Report = flags.Report
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Output == "" {
		c.Output = "silhouette.png"
	}
	if c.Size <= 0 {
		c.Size = 200
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.WallZ == nil {
		z := 10.0
		c.WallZ = &z
	}
	if c.WallSize <= 0 {
		c.WallSize = 7
	}
	if c.RayOrigin == nil {
		c.RayOrigin = &[3]float64{0, 0, -5}
	}
	if c.Color == nil {
		c.Color = &[3]float64{1, 0, 0}
	}
	if c.Transforms == nil {
		c.Transforms = []TransformStep{
			{Op: "scale", Args: []float64{0.5, 1, 1}},
			{Op: "shear", Args: []float64{1, 0, 0, 0, 0, 0}},
		}
	}
}

// Matrix folds the transform steps into one matrix with the fluent helpers,
// so the first step in the file is applied to the sphere first.
func (c *Config) Matrix() (mathutil.Mat4, error) {
	m := mathutil.Mat4Identity()
	for i, st := range c.Transforms {
		want, ok := arity[strings.ToLower(st.Op)]
		if !ok {
			return mathutil.Mat4{}, fmt.Errorf("config: transform %d: %w %q", i, ErrUnknownOp, st.Op)
		}
		if len(st.Args) != want {
			return mathutil.Mat4{}, fmt.Errorf("config: transform %d: %s takes %d args, got %d", i, st.Op, want, len(st.Args))
		}
		a := st.Args
		switch strings.ToLower(st.Op) {
		case "translate":
			m = m.Translate(a[0], a[1], a[2])
		case "scale":
			m = m.Scale(a[0], a[1], a[2])
		case "rotate_x":
			m = m.RotateX(mathutil.Deg2Rad(a[0]))
		case "rotate_y":
			m = m.RotateY(mathutil.Deg2Rad(a[0]))
		case "rotate_z":
			m = m.RotateZ(mathutil.Deg2Rad(a[0]))
		case "shear":
			m = m.Shear(a[0], a[1], a[2], a[3], a[4], a[5])
		}
	}
	return m, nil
}

var arity = map[string]int{
	"translate": 3,
	"scale":     3,
	"rotate_x":  1,
	"rotate_y":  1,
	"rotate_z":  1,
	"shear":     6,
}
