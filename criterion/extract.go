package criterion

import (
	"errors"
	"log/slog"

	"github.com/credlab/credbench/table"
)

// Extractor walks one scheme's Criterion tree and produces normalized
// benchmark records. Each leaf is processed independently; a leaf that
// fails to parse contributes no record and never aborts the walk unless
// Strict is set. Partial success is the expected steady state when
// scanning real benchmark trees that contain stray or legacy
// directories.
type Extractor struct {
	Scheme string
	Strict bool
	Logger *slog.Logger
}

// NewExtractor creates an Extractor labelling every record with scheme.
func NewExtractor(scheme string, strict bool, logger *slog.Logger) *Extractor {
	return &Extractor{
		Scheme: scheme,
		Strict: strict,
		Logger: logger.With(slog.String("scheme", scheme)),
	}
}

// Extract processes every leaf under root. A missing root is returned as
// an error. In strict mode the first failing leaf is returned as an
// error; otherwise failing leaves are logged and skipped.
func (e *Extractor) Extract(root string) ([]table.Record, error) {
	leaves, err := Walk(root)
	if err != nil {
		return nil, err
	}

	records := make([]table.Record, 0, len(leaves))
	seen := make(map[string]bool, len(leaves))

	for _, leaf := range leaves {
		id, err := ParseID(leaf.ID())
		if err != nil {
			if e.Strict {
				return nil, err
			}

			if !errors.Is(err, ErrNotBenchmark) {
				e.Logger.Warn("skipping unrecognized benchmark id",
					slog.String("id", leaf.ID()),
					slog.String("error", err.Error()),
				)
			}

			continue
		}

		path := EstimatesPath(leaf.Dir)

		meanMs, err := ReadEstimate(path)
		if err != nil {
			if e.Strict {
				return nil, err
			}

			e.Logger.Warn("skipping unreadable estimate",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)

			continue
		}

		rec := table.Record{
			Scheme:       e.Scheme,
			Operation:    id.Operation,
			Participants: id.Participants,
			Threshold:    id.Threshold,
			Attributes:   id.Attributes,
			MeanMs:       meanMs,
		}

		// The walker visits each leaf once, so duplicates indicate a
		// malformed tree rather than a walker bug.
		if seen[rec.Key()] {
			e.Logger.Warn("duplicate benchmark instance",
				slog.String("key", rec.Key()),
			)

			continue
		}

		seen[rec.Key()] = true
		records = append(records, rec)
	}

	return records, nil
}
