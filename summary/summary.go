// Package summary formats extracted benchmark tables for human review.
package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/credlab/credbench/table"
)

// Stats describes the shape of an extracted table: how many data points
// it holds and which distinct parameter values they cover.
type Stats struct {
	Records      int      `json:"records"`
	Schemes      []string `json:"schemes"`
	Operations   []string `json:"operations"`
	Participants []int    `json:"participants"`
	Thresholds   []int    `json:"thresholds"`
	Attributes   []int    `json:"attributes"`
}

// Collect computes Stats for a record set. Operations keep their order
// of first appearance (the table's presentation order); numeric values
// are sorted ascending.
func Collect(records []table.Record) Stats {
	stats := Stats{Records: len(records)}

	seenScheme := make(map[string]bool)
	seenOp := make(map[string]bool)

	for _, r := range records {
		if !seenScheme[r.Scheme] {
			seenScheme[r.Scheme] = true
			stats.Schemes = append(stats.Schemes, r.Scheme)
		}

		if !seenOp[r.Operation] {
			seenOp[r.Operation] = true
			stats.Operations = append(stats.Operations, r.Operation)
		}
	}

	stats.Participants = distinctInts(records, func(r table.Record) int {
		return r.Participants
	})
	stats.Thresholds = distinctInts(records, func(r table.Record) int {
		return r.Threshold
	})
	stats.Attributes = distinctInts(records, func(r table.Record) int {
		return r.Attributes
	})

	return stats
}

// Generate writes a markdown table of the records followed by the
// distinct parameter values they cover.
func Generate(w io.Writer, records []table.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Scheme | Operation | N | t | n | Mean |")
	fmt.Fprintln(w, "|--------|-----------|---|---|---|------|")

	for _, r := range records {
		fmt.Fprintf(w, "| %s | %s | %d | %d | %d | %s |\n",
			r.Scheme,
			r.Operation,
			r.Participants,
			r.Threshold,
			r.Attributes,
			formatMs(r.MeanMs),
		)
	}

	fmt.Fprintln(w)

	stats := Collect(records)

	fmt.Fprintf(w, "Data points: %d\n", stats.Records)
	fmt.Fprintf(w, "Schemes: %s\n", strings.Join(stats.Schemes, ", "))
	fmt.Fprintf(w, "Operations: %s\n", strings.Join(stats.Operations, ", "))
	fmt.Fprintf(w, "N (participants): %s\n", joinInts(stats.Participants))
	fmt.Fprintf(w, "t (thresholds): %s\n", joinInts(stats.Thresholds))
	fmt.Fprintf(w, "n (attributes): %s\n", joinInts(stats.Attributes))

	return nil
}

// GenerateJSON writes records as JSON to w.
func GenerateJSON(w io.Writer, records []table.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(records)
}

func formatMs(ms float64) string {
	if ms >= 1000 {
		return fmt.Sprintf("%.2fs", ms/1000)
	}

	return fmt.Sprintf("%.3fms", ms)
}

func distinctInts(
	records []table.Record,
	field func(table.Record) int,
) []int {
	seen := make(map[int]bool)

	var values []int

	for _, r := range records {
		v := field(r)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}

	slices.Sort(values)

	return values
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, ", ")
}
