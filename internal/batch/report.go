package batch

import (
	"encoding/json"
	"os"
)

// Report summarizes one render run.
type Report struct {
	Size        int     `json:"size"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`
	Hits        int     `json:"hits"`
	Elapsed     float64 `json:"elapsed_seconds"`
	Output      string  `json:"output"`
}

// WriteReport writes the report as indented JSON.
func WriteReport(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
