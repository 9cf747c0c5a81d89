package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ss "nickandperla.net/sort_suite"
)

// NewGenCommand returns the command writing a random input file
func NewGenCommand(g *globalFlags) *cobra.Command {
	var override ss.ToolConfig
	var out string

	cmd := &cobra.Command{
		Use:     "gen",
		Short:   "Write random integers to an input file",
		Example: `sortsuite gen --count 5000 --lower -100 --upper 100 --seed 42 --out data.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := g.config
			if err := config.Merge(&override); err != nil {
				return err
			}
			if cmd.Flags().Changed("lower") {
				config.Generator.Lower = override.Generator.Lower
			}
			if out == "" {
				out = config.Input.Path
			}

			values, seed, err := config.Generator.Generate()
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("unable to create %s: %w", out, err)
			}
			defer f.Close()

			if err := ss.WriteNumbers(f, values); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			ss.Logger().WithField("seed", seed).Infof("wrote %d values to %s", len(values), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&override.Generator.Count, "count", 0, "Number of values (default from config)")
	cmd.Flags().IntVar(&override.Generator.Lower, "lower", 0, "Inclusive lower bound")
	cmd.Flags().IntVar(&override.Generator.Upper, "upper", 0, "Exclusive upper bound")
	cmd.Flags().Int64Var(&override.Generator.Seed, "seed", 0, "Random seed, 0 picks one from the clock")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: input path)")

	return cmd
}
