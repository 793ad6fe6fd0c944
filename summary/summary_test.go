package summary

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/credlab/credbench/table"
)

func sample() []table.Record {
	return []table.Record{
		{
			Scheme: "t_utt", Operation: "token_request",
			Participants: 4, Threshold: 3, Attributes: 8,
			MeanMs: 5.9096078,
		},
		{
			Scheme: "t_utt", Operation: "token_request",
			Participants: 16, Threshold: 9, Attributes: 8,
			MeanMs: 5.94213946397675,
		},
		{
			Scheme: "t_utt", Operation: "verify",
			Participants: 4, Threshold: 3, Attributes: 8,
			MeanMs: 1700.7060780348866,
		},
	}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, sample()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "token_request") {
		t.Error("expected token_request in output")
	}
	if !strings.Contains(output, "5.910ms") {
		t.Error("expected formatted sub-second mean in output")
	}
	if !strings.Contains(output, "1.70s") {
		t.Error("expected formatted second-scale mean in output")
	}
	if !strings.Contains(output, "Data points: 3") {
		t.Error("expected data point count in output")
	}
	if !strings.Contains(output, "N (participants): 4, 16") {
		t.Error("expected distinct participant counts in output")
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, nil); err == nil {
		t.Error("expected error for empty records")
	}
}

func TestGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateJSON(&buf, sample()); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed []table.Record
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed) != 3 {
		t.Fatalf("expected 3 records, got %d", len(parsed))
	}
	if parsed[0].Operation != "token_request" {
		t.Errorf("operation = %q, want token_request", parsed[0].Operation)
	}
}

func TestCollect(t *testing.T) {
	stats := Collect(sample())

	if stats.Records != 3 {
		t.Errorf("records = %d, want 3", stats.Records)
	}
	if len(stats.Schemes) != 1 || stats.Schemes[0] != "t_utt" {
		t.Errorf("schemes = %v, want [t_utt]", stats.Schemes)
	}

	wantOps := []string{"token_request", "verify"}
	if len(stats.Operations) != len(wantOps) {
		t.Fatalf("operations = %v, want %v", stats.Operations, wantOps)
	}
	for i, op := range wantOps {
		if stats.Operations[i] != op {
			t.Errorf("operations[%d] = %q, want %q", i, stats.Operations[i], op)
		}
	}

	if len(stats.Participants) != 2 ||
		stats.Participants[0] != 4 || stats.Participants[1] != 16 {
		t.Errorf("participants = %v, want [4 16]", stats.Participants)
	}
	if len(stats.Thresholds) != 2 {
		t.Errorf("thresholds = %v, want two values", stats.Thresholds)
	}
	if len(stats.Attributes) != 1 || stats.Attributes[0] != 8 {
		t.Errorf("attributes = %v, want [8]", stats.Attributes)
	}
}

func TestFormatMs(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.000ms"},
		{5.9096078, "5.910ms"},
		{999.4, "999.400ms"},
		{1000, "1.00s"},
		{1700.7060780348866, "1.70s"},
	}

	for _, tt := range tests {
		got := formatMs(tt.input)
		if got != tt.want {
			t.Errorf("formatMs(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
