package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/credlab/credbench/bench"
	"github.com/credlab/credbench/config"
)

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		cfgFile   string
		crateDir  string
		benchName string
		timeout   time.Duration
		extract   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run cargo bench and optionally extract its results",
		Long: `Invoke cargo bench for one bench target of the scheme crate, producing
the Criterion output tree under target/criterion. With --extract the
resulting tree is extracted immediately, using the bench name as the
scheme label.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := bench.Run(cmd.Context(), logger, bench.RunConfig{
				CrateDir: crateDir,
				Bench:    benchName,
				Timeout:  timeout,
			})
			if err != nil {
				return err
			}

			if !extract {
				logger.InfoContext(cmd.Context(), "results ready",
					slog.String("root", root),
				)

				return nil
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			cfg.Root = root
			cfg.Scheme = benchName

			return runExtract(cmd.Context(), logger, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "",
		"Path to config file (default: ./credbench.yaml)")
	flags.StringVar(&crateDir, "crate", ".",
		"Path to the scheme crate")
	flags.StringVar(&benchName, "bench", "t_utt",
		"Bench target to run (e.g. t_utt, t_siris)")
	flags.DurationVar(&timeout, "timeout", 2*time.Hour,
		"Maximum wall time for the cargo bench run")
	flags.BoolVar(&extract, "extract", false,
		"Extract the results after the run completes")

	return cmd
}
