package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/credlab/credbench/config"
	"github.com/credlab/credbench/criterion"
	"github.com/credlab/credbench/store"
	"github.com/credlab/credbench/summary"
	"github.com/credlab/credbench/table"
)

func newExtractCmd(logger *slog.Logger) *cobra.Command {
	var (
		cfgFile   string
		rootDir   string
		scheme    string
		output    string
		storePath string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract normalized benchmark records from a Criterion tree",
		Long: `Walk a Criterion results tree (one directory per operation, one
subdirectory per N<int>_t<int>_n<int> parameter set), read the mean point
estimate of each leaf, and write one ordered CSV table. Leaves that fail
to parse are logged and skipped unless --strict is set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("root") {
				cfg.Root = rootDir
			}
			if flags.Changed("scheme") {
				cfg.Scheme = scheme
			}
			if flags.Changed("output") {
				cfg.Output = output
			}
			if flags.Changed("store") {
				cfg.Store = storePath
			}
			if flags.Changed("strict") {
				cfg.Strict = strict
			}

			return runExtract(cmd.Context(), logger, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "",
		"Path to config file (default: ./credbench.yaml)")
	flags.StringVar(&rootDir, "root", "",
		"Criterion results root (e.g. target/criterion/t_utt)")
	flags.StringVar(&scheme, "scheme", "",
		"Scheme label recorded in the output table")
	flags.StringVar(&output, "output", "",
		"Output CSV path (default: <scheme>_benchmarks.csv)")
	flags.StringVar(&storePath, "store", "",
		"SQLite database to append this run to")
	flags.BoolVar(&strict, "strict", false,
		"Fail on the first unparseable leaf instead of skipping it")

	return cmd
}

func runExtract(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
) error {
	if cfg.Root == "" {
		return fmt.Errorf("results root must be set via --root or config")
	}

	ext := criterion.NewExtractor(cfg.Scheme, cfg.Strict, logger)

	records, err := ext.Extract(cfg.Root)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return fmt.Errorf("no benchmark data found under %s", cfg.Root)
	}

	table.Sort(records, cfg.Operations)

	output := cfg.Output
	if output == "" {
		output = cfg.Scheme + "_benchmarks.csv"
	}

	if err := table.WriteFile(output, records); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	stats := summary.Collect(records)

	logger.InfoContext(ctx, "benchmark data extracted",
		slog.String("output", output),
		slog.Int("records", stats.Records),
		slog.Any("operations", stats.Operations),
		slog.Any("participants", stats.Participants),
		slog.Any("thresholds", stats.Thresholds),
		slog.Any("attributes", stats.Attributes),
	)

	if cfg.Store != "" {
		st, err := store.Open(cfg.Store)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		runID, err := st.SaveRun(cfg.Scheme, time.Now(), records)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}

		logger.InfoContext(ctx, "run stored",
			slog.Int64("run_id", runID),
			slog.String("store", cfg.Store),
		)
	}

	return nil
}
