package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/credlab/credbench/config"
	"github.com/credlab/credbench/table"
)

func newMergeCmd(logger *slog.Logger) *cobra.Command {
	var (
		cfgFile string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "merge <table.csv>...",
		Short: "Union per-scheme tables into one comparison table",
		Long: `Concatenate several per-scheme CSV tables into a single table whose
column set is the union of the inputs; a column stays empty for schemes
that do not report it. Rows are re-sorted with the configured operation
order. The short s3id header names (N, n, t, t', l, L) are accepted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			var records []table.Record

			for _, path := range args {
				recs, err := table.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}

				records = append(records, recs...)
			}

			if len(records) == 0 {
				return fmt.Errorf("no benchmark data in input tables")
			}

			table.Sort(records, cfg.Operations)

			if err := table.WriteFile(output, records); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			logger.InfoContext(cmd.Context(), "tables merged",
				slog.Int("tables", len(args)),
				slog.Int("records", len(records)),
				slog.String("output", output),
			)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "",
		"Path to config file (default: ./credbench.yaml)")
	flags.StringVar(&output, "output", "combined_benchmarks.csv",
		"Output CSV path")

	return cmd
}
