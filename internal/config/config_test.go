package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trtc/internal/mathutil"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndResolve(t *testing.T) {
	path := writeFile(t, `{
		"output": "out/sphere.webp",
		"size": 64,
		"wall_size": 9,
		"color": [0, 1, 0],
		"transforms": [{"op": "translate", "args": [1, 0, 0]}]
	}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{Size: 32, Workers: 3})

	if cfg.Output != "out/sphere.webp" {
		t.Fatalf("output = %q", cfg.Output)
	}
	if cfg.Size != 32 {
		t.Fatalf("flag should override size, got %d", cfg.Size)
	}
	if cfg.Workers != 3 || cfg.Supersample != 1 {
		t.Fatalf("workers/supersample = %d/%d", cfg.Workers, cfg.Supersample)
	}
	if cfg.WallSize != 9 || *cfg.WallZ != 10 {
		t.Fatalf("wall = %g @ z %g", cfg.WallSize, *cfg.WallZ)
	}
	if *cfg.Color != [3]float64{0, 1, 0} || *cfg.RayOrigin != [3]float64{0, 0, -5} {
		t.Fatalf("color/origin = %v/%v", *cfg.Color, *cfg.RayOrigin)
	}
	if len(cfg.Transforms) != 1 {
		t.Fatalf("transforms from file should be kept: %+v", cfg.Transforms)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	if cfg.Output != "silhouette.png" || cfg.Size != 200 || cfg.Workers < 1 {
		t.Fatalf("defaults: %+v", cfg)
	}
	m, err := cfg.Matrix()
	if err != nil {
		t.Fatal(err)
	}
	want := mathutil.Shearing(1, 0, 0, 0, 0, 0).Mul4(mathutil.Scaling(0.5, 1, 1))
	if !m.Equal(want) {
		t.Fatalf("default transform = %+v", m)
	}
}

// Zero is a real wall position and must survive Resolve, like black does.
func TestResolveKeepsExplicitZero(t *testing.T) {
	cfg, err := Load(writeFile(t, `{"wall_z": 0, "color": [0, 0, 0]}`))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{})
	if cfg.WallZ == nil || *cfg.WallZ != 0 {
		t.Fatalf("wall_z = %v, want 0", cfg.WallZ)
	}
	if *cfg.Color != [3]float64{} {
		t.Fatalf("color = %v, want black", *cfg.Color)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
	if _, err := Load(writeFile(t, `{"size": "big"}`)); err == nil || !strings.HasPrefix(err.Error(), "config: parse") {
		t.Fatalf("parse error = %v", err)
	}
}

func TestMatrix(t *testing.T) {
	cfg := Config{Transforms: []TransformStep{
		{Op: "rotate_x", Args: []float64{90}},
		{Op: "scale", Args: []float64{5, 5, 5}},
		{Op: "TRANSLATE", Args: []float64{10, 5, 7}},
	}}
	m, err := cfg.Matrix()
	if err != nil {
		t.Fatal(err)
	}
	if got := m.MulVec(mathutil.Point(1, 0, 1)); !got.Equal(mathutil.Point(15, 0, 7)) {
		t.Fatalf("chain applied to point = %+v", got)
	}

	cfg = Config{Transforms: []TransformStep{{Op: "rotate_y", Args: []float64{90}}, {Op: "rotate_z", Args: []float64{180}}}}
	m, err = cfg.Matrix()
	if err != nil {
		t.Fatal(err)
	}
	want := mathutil.RotationZ(math.Pi).Mul4(mathutil.RotationY(math.Pi / 2))
	if !m.Equal(want) {
		t.Fatalf("rotations = %+v", m)
	}
}

func TestMatrixErrors(t *testing.T) {
	cfg := Config{Transforms: []TransformStep{{Op: "twist", Args: []float64{1}}}}
	if _, err := cfg.Matrix(); !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("unknown op error = %v", err)
	}
	cfg = Config{Transforms: []TransformStep{{Op: "shear", Args: []float64{1, 2}}}}
	if _, err := cfg.Matrix(); err == nil || !strings.Contains(err.Error(), "takes 6 args") {
		t.Fatalf("arity error = %v", err)
	}
}
