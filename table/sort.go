package table

import (
	"cmp"
	"slices"
)

// Sort orders records for presentation: operation rank according to the
// given priority list, then ascending participants, threshold, and
// attributes. Operations not in the list rank after all listed ones.
// The sort is stable, so remaining ties keep their discovery order.
func Sort(records []Record, operations []string) {
	rank := make(map[string]int, len(operations))
	for i, op := range operations {
		rank[op] = i
	}

	opRank := func(op string) int {
		if r, ok := rank[op]; ok {
			return r
		}

		return len(operations)
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		if c := cmp.Compare(opRank(a.Operation), opRank(b.Operation)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Participants, b.Participants); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Threshold, b.Threshold); c != 0 {
			return c
		}

		return cmp.Compare(a.Attributes, b.Attributes)
	})
}
