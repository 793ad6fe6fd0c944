package criterion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Criterion stores the statistics of the most recent measurement in the
// "new" subdirectory of each leaf.
const (
	newDir        = "new"
	estimatesFile = "estimates.json"
)

const nsPerMs = 1e6

// estimatesDoc mirrors the part of the Criterion estimates document we
// read. Pointer fields distinguish an absent mean.point_estimate from a
// zero one.
type estimatesDoc struct {
	Mean *struct {
		PointEstimate *float64 `json:"point_estimate"`
	} `json:"mean"`
}

// EstimatesPath returns the conventional location of the estimates
// document inside a leaf directory.
func EstimatesPath(leafDir string) string {
	return filepath.Join(leafDir, newDir, estimatesFile)
}

// ReadEstimate extracts mean.point_estimate from the Criterion estimates
// document at path and converts it from nanoseconds to milliseconds.
// Missing file, malformed JSON, and missing field all fail uniformly.
func ReadEstimate(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read estimates: %w", err)
	}

	var doc estimatesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	if doc.Mean == nil || doc.Mean.PointEstimate == nil {
		return 0, fmt.Errorf("%s: missing mean.point_estimate", path)
	}

	return *doc.Mean.PointEstimate / nsPerMs, nil
}
