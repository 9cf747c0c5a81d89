package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ss "nickandperla.net/sort_suite"
)

// NewStatsCommand returns the command summarizing the ledger
func NewStatsCommand(g *globalFlags) *cobra.Command {
	var override ss.ToolConfig

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize recorded benchmark runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := g.config
			if err := config.Merge(&override); err != nil {
				return err
			}

			ledger, err := ss.NewLedger(&config.Ledger)
			if err != nil {
				return fmt.Errorf("Failed to create or initialize ledger: %w", err)
			}
			defer ledger.Shutdown()

			runs, err := ledger.RunCount()
			if err != nil {
				return err
			}
			stats, err := ledger.QueryStats()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Runs recorded: %d\n", runs)
			for _, s := range stats {
				fmt.Fprintf(w, "  %-10s runs=%-4d mean=%s best=%s worst=%s\n",
					s.Algorithm, s.Runs, ss.FormatElapsed(s.Mean), ss.FormatElapsed(s.Best), ss.FormatElapsed(s.Worst))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&override.Ledger.Path, "db-path", "", "Ledger directory (default from config)")
	cmd.Flags().StringVar(&override.Ledger.Name, "db-name", "", "Ledger file name (default from config)")

	return cmd
}
