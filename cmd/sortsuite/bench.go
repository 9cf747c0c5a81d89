package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ss "nickandperla.net/sort_suite"
)

// NewBenchCommand returns the command timing every selected algorithm on
// the same input
func NewBenchCommand(g *globalFlags) *cobra.Command {
	var override ss.ToolConfig
	var algos []string
	var verify bool
	var record bool

	cmd := &cobra.Command{
		Use:     "bench",
		Short:   "Time each algorithm on the same input",
		Example: `sortsuite bench --file data.txt --algo bubble,merge,tim --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := g.config
			if err := config.Merge(&override); err != nil {
				return err
			}
			if cmd.Flags().Changed("verify") {
				config.Run.Verify = verify
			}
			if record {
				config.Ledger.Enabled = true
			}

			harness := ss.NewHarness(ss.DefaultRegistry(), config.Run.Verify)
			// Fail on bad names before any input is read or timed.
			if _, err := harness.Registry.Resolve(algos...); err != nil {
				return err
			}

			values, err := ss.ReadNumbersFromFile(config.Input.Path, config.Input.Limit)
			if err != nil {
				return err
			}

			samples, err := harness.Run(values, algos...)
			if err != nil {
				return err
			}

			report := ss.NewReport(config.Input.Path, values, samples)
			report.PrintOutput = config.Run.Print
			if err := report.Render(cmd.OutOrStdout(), config.Run.Format); err != nil {
				return err
			}

			if !config.Ledger.Enabled {
				return nil
			}
			ledger, err := ss.NewLedger(&config.Ledger)
			if err != nil {
				return fmt.Errorf("Failed to create or initialize ledger: %w", err)
			}
			defer ledger.Shutdown()

			id, err := ledger.Record(report, config.Run.Verify)
			if err != nil {
				return err
			}
			ss.Logger().WithField("run", id).Info("recorded benchmark run")
			return nil
		},
	}

	cmd.Flags().StringVar(&override.Input.Path, "file", "", "Input text file path (default: data.txt)")
	cmd.Flags().StringSliceVar(&algos, "algo", nil, "Algorithms to run, comma separated (default: all)")
	cmd.Flags().IntVar(&override.Input.Limit, "limit", 0, fmt.Sprintf("Maximum number of items to read (default: %d)", ss.DefaultLimit))
	cmd.Flags().BoolVar(&override.Run.Print, "print", false, "Print each sorted result")
	cmd.Flags().BoolVar(&verify, "verify", true, "Check every output is an ordered permutation of the input")
	cmd.Flags().StringVar(&override.Run.Format, "format", "", "Report format: text, json or yaml")
	cmd.Flags().BoolVar(&record, "record", false, "Store the timings in the ledger database")

	return cmd
}
