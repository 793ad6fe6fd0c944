package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/credlab/credbench/summary"
	"github.com/credlab/credbench/table"
)

func newSummaryCmd(_ *slog.Logger) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "summary <table.csv>",
		Short: "Summarize an extracted benchmark table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			records, err := table.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			if outputJSON {
				return summary.GenerateJSON(os.Stdout, records)
			}

			return summary.Generate(os.Stdout, records)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false,
		"Output records as JSON instead of a markdown table")

	return cmd
}
