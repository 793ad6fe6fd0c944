package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/credlab/credbench/store"
)

func newHistoryCmd(_ *slog.Logger) *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List extraction runs stored in a results database",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := store.Open(storePath)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.Runs()
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("no stored runs")

				return nil
			}

			w := os.Stdout

			fmt.Fprintln(w, "| Run | Scheme | Records | Stored |")
			fmt.Fprintln(w, "|-----|--------|---------|--------|")

			for _, r := range runs {
				fmt.Fprintf(w, "| %d | %s | %d | %s |\n",
					r.ID,
					r.Scheme,
					r.Records,
					r.CreatedAt.UTC().Format(time.RFC3339),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&storePath, "store", "credbench.db",
		"Path to the SQLite results database")

	return cmd
}
