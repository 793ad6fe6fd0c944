// Package bench invokes the cargo bench harness that produces the
// Criterion output tree consumed by extraction.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// RunConfig holds parameters for one cargo bench invocation.
type RunConfig struct {
	CrateDir string
	Bench    string
	Timeout  time.Duration
}

// ResultsRoot returns the Criterion output directory for a bench target.
// Criterion groups results under the benchmark group name, which matches
// the bench target name for the credential-scheme harnesses.
func ResultsRoot(crateDir, bench string) string {
	return filepath.Join(crateDir, "target", "criterion", bench)
}

// Run executes `cargo bench --bench <name>` in the crate directory and
// returns the Criterion results root it produced. Cargo's output is
// streamed to stderr so progress stays visible during long sweeps.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	cfg RunConfig,
) (string, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger.InfoContext(ctx, "running benchmarks",
		slog.String("crate", cfg.CrateDir),
		slog.String("bench", cfg.Bench),
	)

	cmd := exec.CommandContext(ctx, "cargo", "bench", "--bench", cfg.Bench)
	cmd.Dir = cfg.CrateDir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	start := time.Now()

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("cargo bench %s: %w", cfg.Bench, err)
	}

	logger.InfoContext(ctx, "benchmarks finished",
		slog.Duration("wall_time", time.Since(start)),
	)

	root := ResultsRoot(cfg.CrateDir, cfg.Bench)

	if _, err := os.Stat(root); err != nil {
		return "", fmt.Errorf(
			"cargo bench %s: results not found at %s", cfg.Bench, root,
		)
	}

	return root, nil
}
