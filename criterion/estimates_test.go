package criterion

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeEstimates(t *testing.T, leafDir, content string) string {
	t.Helper()

	dir := filepath.Join(leafDir, newDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}

	path := filepath.Join(dir, estimatesFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return path
}

func TestReadEstimate(t *testing.T) {
	leaf := t.TempDir()
	path := writeEstimates(t, leaf,
		`{"mean": {"point_estimate": 5909607.8, "standard_error": 1234.5}}`)

	got, err := ReadEstimate(path)
	if err != nil {
		t.Fatalf("ReadEstimate failed: %v", err)
	}

	want := 5.9096078
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ReadEstimate = %v, want %v", got, want)
	}
}

func TestReadEstimateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new", "estimates.json")

	if _, err := ReadEstimate(path); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadEstimateMalformed(t *testing.T) {
	leaf := t.TempDir()
	path := writeEstimates(t, leaf, `not json at all`)

	if _, err := ReadEstimate(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestReadEstimateMissingField(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no mean", `{"median": {"point_estimate": 1.0}}`},
		{"no point_estimate", `{"mean": {"standard_error": 1.0}}`},
	}

	for _, tt := range tests {
		leaf := t.TempDir()
		path := writeEstimates(t, leaf, tt.content)

		if _, err := ReadEstimate(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestEstimatesPath(t *testing.T) {
	got := EstimatesPath(filepath.Join("root", "verify", "N4_t3_n8"))
	want := filepath.Join("root", "verify", "N4_t3_n8", "new", "estimates.json")

	if got != want {
		t.Errorf("EstimatesPath = %q, want %q", got, want)
	}
}
