// Package batch distributes independent canvas rows across a worker pool.
package batch

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds the pool settings for a batch run.
type Config struct {
	Workers  int
	Progress time.Duration // zero disables progress lines
	Out      io.Writer     // progress destination, stdout when nil
}

// RowFunc renders one row and returns the number of pixels it hit.
type RowFunc func(y int) int

// RowResult holds the outcome of rendering one row.
type RowResult struct {
	Row  int
	Hits int
}

// Run renders rows [0, rows) using a worker pool. Results are indexed by row.
func Run(cfg Config, rows int, fn RowFunc) []RowResult {
	results := make([]RowResult, rows)
	if rows <= 0 {
		return results
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.Progress > 0 {
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(out, "  [%d/%d] %.1f rows/sec\n", p, rows, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				results[y] = RowResult{Row: y, Hits: fn(y)}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for y := 0; y < rows; y++ {
		rowChan <- y
	}
	close(rowChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	return results
}

// TotalHits sums the hit counts of all rows.
func TotalHits(results []RowResult) int {
	n := 0
	for _, r := range results {
		n += r.Hits
	}
	return n
}
