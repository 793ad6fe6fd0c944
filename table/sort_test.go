package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rec(op string, n, t, a int) Record {
	return Record{
		Scheme: "t_utt", Operation: op,
		Participants: n, Threshold: t, Attributes: a,
	}
}

func TestSortOperationPriority(t *testing.T) {
	order := []string{"token_request", "t_issue", "prove", "verify"}

	records := []Record{
		rec("verify", 4, 3, 8),
		rec("token_request", 4, 3, 8),
		rec("t_issue", 4, 3, 8),
	}

	Sort(records, order)

	ops := make([]string, len(records))
	for i, r := range records {
		ops[i] = r.Operation
	}

	assert.Equal(t, []string{"token_request", "t_issue", "verify"}, ops)
}

func TestSortUnlistedOperationsLast(t *testing.T) {
	order := []string{"token_request", "verify"}

	records := []Record{
		rec("mystery_op", 4, 3, 8),
		rec("verify", 4, 3, 8),
		rec("another_op", 4, 3, 8),
		rec("token_request", 4, 3, 8),
	}

	Sort(records, order)

	ops := make([]string, len(records))
	for i, r := range records {
		ops[i] = r.Operation
	}

	// Unlisted operations sort after all listed ones and keep their
	// discovery order relative to each other.
	assert.Equal(t, []string{
		"token_request", "verify", "mystery_op", "another_op",
	}, ops)
}

func TestSortNumericKeys(t *testing.T) {
	order := []string{"verify"}

	records := []Record{
		rec("verify", 16, 9, 8),
		rec("verify", 4, 3, 128),
		rec("verify", 4, 3, 8),
		rec("verify", 16, 3, 8),
	}

	Sort(records, order)

	want := []Record{
		rec("verify", 4, 3, 8),
		rec("verify", 4, 3, 128),
		rec("verify", 16, 3, 8),
		rec("verify", 16, 9, 8),
	}

	assert.Equal(t, want, records)
}

func TestSortStable(t *testing.T) {
	order := []string{"verify"}

	a := rec("verify", 4, 3, 8)
	a.MeanMs = 1.0
	b := rec("verify", 4, 3, 8)
	b.MeanMs = 2.0

	records := []Record{a, b}
	Sort(records, order)

	assert.Equal(t, []Record{a, b}, records)
}
