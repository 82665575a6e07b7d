package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"trtc/internal/batch"
	"trtc/internal/canvas"
	"trtc/internal/config"
	"trtc/internal/demo"
	"trtc/internal/geom"
	"trtc/internal/mathutil"
	"trtc/internal/postprocess"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	size := flag.Int("size", 0, "Output width and height in pixels (default: 200)")
	output := flag.String("o", "", "Output image, format from extension: .png .webp .tga .bmp (default: silhouette.png)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	supersample := flag.Int("ss", 0, "Supersampling factor (default: 1)")
	report := flag.String("report", "", "Write a JSON run report to this path")
	compare := flag.String("compare", "", "Reference image to diff the output against")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:      *output,
		Report:      *report,
		Size:        *size,
		Supersample: *supersample,
		Workers:     *workers,
	})

	transform, err := cfg.Matrix()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !transform.IsInvertible() {
		fmt.Fprintln(os.Stderr, "Warning: sphere transform is singular, the image will be empty")
	}

	scene := &demo.SilhouetteScene{
		Sphere:    geom.NewSphereWithTransform(transform),
		RayOrigin: mathutil.Point(cfg.RayOrigin[0], cfg.RayOrigin[1], cfg.RayOrigin[2]),
		WallZ:     *cfg.WallZ,
		WallSize:  cfg.WallSize,
		Color:     canvas.Color{R: cfg.Color[0], G: cfg.Color[1], B: cfg.Color[2]},
	}

	renderSize := cfg.Size * cfg.Supersample
	fmt.Printf("Sphere silhouette %dx%d (x%d supersample)\n", cfg.Size, cfg.Size, cfg.Supersample)
	fmt.Printf("Workers: %d\n", cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	c := canvas.New(renderSize, renderSize)
	results := batch.Run(batch.Config{
		Workers:  cfg.Workers,
		Progress: 2 * time.Second,
	}, renderSize, func(y int) int {
		return scene.RenderRow(c, y)
	})
	hits := batch.TotalHits(results)

	img := postprocess.Downsample(c.Image(), cfg.Size, cfg.Size)
	if err := canvas.SaveImage(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Hit pixels: %d/%d\n", hits, renderSize*renderSize)

	if cfg.Report != "" {
		r := batch.Report{
			Size:        cfg.Size,
			Supersample: cfg.Supersample,
			Workers:     cfg.Workers,
			Hits:        hits,
			Elapsed:     elapsed.Seconds(),
			Output:      cfg.Output,
		}
		if err := batch.WriteReport(cfg.Report, r); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: report write failed: %v\n", err)
		} else {
			fmt.Printf("Report: %s\n", cfg.Report)
		}
	}

	if *compare != "" {
		ref, err := canvas.Load(*compare)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		n, err := canvas.Mismatches(canvas.FromImage(img), ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Mismatched pixels vs %s: %d\n", *compare, n)
		if n > 0 {
			os.Exit(1)
		}
	}
}
