// Package table defines the normalized benchmark record schema shared by
// all schemes and the ordered tabular form consumed by downstream
// analysis.
package table

import "fmt"

// Record is one normalized benchmark measurement: a single operation
// timed at a single parameter set.
type Record struct {
	Scheme       string `json:"scheme"`
	Operation    string `json:"operation"`
	Participants int    `json:"n_participants"` // N, number of signing participants
	Threshold    int    `json:"threshold"`      // t, signing threshold
	Attributes   int    `json:"attributes"`     // n, number of credential attributes

	// Optional parameters reported by some schemes only. A nil field is
	// absent from the written table rather than defaulting to zero, so
	// merged tables carry the union of columns across schemes.
	Threshold2      *int `json:"threshold2,omitempty"`       // t', aggregation threshold
	Leakage         *int `json:"leakage,omitempty"`          // l, leakage parameter
	TotalAttributes *int `json:"total_attributes,omitempty"` // L, total attribute space

	MeanMs float64 `json:"mean_ms"` // mean running time in milliseconds
}

// Key identifies the benchmark instance a record measures. The tree
// walker visits each leaf directory once, so keys are unique within one
// extraction run.
func (r Record) Key() string {
	return fmt.Sprintf("%s/%s/N%d_t%d_n%d",
		r.Scheme, r.Operation, r.Participants, r.Threshold, r.Attributes)
}
