package criterion

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ID is the decoded form of a benchmark identifier such as
// "token_request/N4_t3_n8".
type ID struct {
	Operation    string
	Participants int
	Threshold    int
	Attributes   int
}

// ErrNotBenchmark marks identifiers naming Criterion's aggregate report
// directory rather than a parameter set. Callers skip these without a
// diagnostic.
var ErrNotBenchmark = errors.New("not a benchmark parameter directory")

// The three parameter fields are located independently by their letter
// prefix, so their order within the identifier does not matter.
var (
	participantsRe = regexp.MustCompile(`N(\d+)`)
	thresholdRe    = regexp.MustCompile(`t(\d+)`)
	attributesRe   = regexp.MustCompile(`n(\d+)`)
)

// ParseID decodes an "<operation>/<params>" benchmark identifier. All
// three parameter fields must be present or the parse fails as a whole;
// there are no partial results.
func ParseID(id string) (ID, error) {
	op, params, ok := strings.Cut(id, "/")
	if !ok || op == "" || params == "" {
		return ID{}, fmt.Errorf(
			"benchmark id %q: missing operation or parameters", id,
		)
	}

	if params == ReportDir {
		return ID{}, fmt.Errorf("benchmark id %q: %w", id, ErrNotBenchmark)
	}

	n := participantsRe.FindStringSubmatch(params)
	t := thresholdRe.FindStringSubmatch(params)
	a := attributesRe.FindStringSubmatch(params)

	if n == nil || t == nil || a == nil {
		return ID{}, fmt.Errorf(
			"benchmark id %q does not match N<int>_t<int>_n<int>", id,
		)
	}

	parsed := ID{Operation: op}

	var err error

	if parsed.Participants, err = strconv.Atoi(n[1]); err != nil {
		return ID{}, fmt.Errorf("benchmark id %q: participants: %w", id, err)
	}

	if parsed.Threshold, err = strconv.Atoi(t[1]); err != nil {
		return ID{}, fmt.Errorf("benchmark id %q: threshold: %w", id, err)
	}

	if parsed.Attributes, err = strconv.Atoi(a[1]); err != nil {
		return ID{}, fmt.Errorf("benchmark id %q: attributes: %w", id, err)
	}

	return parsed, nil
}
