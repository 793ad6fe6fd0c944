// Package main provides the CLI entry point for credbench, a toolkit
// that runs, extracts, and normalizes Criterion benchmark results for
// threshold-credential schemes.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "credbench",
		Short: "Extract and normalize Criterion benchmark results",
		Long: `Credbench turns the nested Criterion output tree written by cargo bench
into one flat, ordered table per credential scheme, and merges tables from
schemes with different parameter sets into a single comparison table.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(logger),
		newExtractCmd(logger),
		newMergeCmd(logger),
		newSummaryCmd(logger),
		newHistoryCmd(logger),
	)

	return root
}
