package main

import (
	"fmt"
	str "strings"

	"github.com/spf13/cobra"

	ss "nickandperla.net/sort_suite"
)

// NewSortCommand returns the single-algorithm sort command
func NewSortCommand(g *globalFlags) *cobra.Command {
	var override ss.ToolConfig

	cmd := &cobra.Command{
		Use:     "sort",
		Short:   "Sort the input file with one algorithm",
		Example: `sortsuite sort --file data.txt --algo merge --print`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := g.config
			if err := config.Merge(&override); err != nil {
				return err
			}

			registry := ss.DefaultRegistry()
			d, err := registry.Lookup(config.Run.Algorithm)
			if err != nil {
				return err
			}
			if !d.Implemented() {
				return fmt.Errorf("%w: %s", ss.ErrNotImplemented, d.Name())
			}

			values, err := ss.ReadNumbersFromFile(config.Input.Path, config.Input.Limit)
			if err != nil {
				return err
			}

			sorted := d.Sort(values)
			ss.Logger().WithField("algorithm", d.Name()).Debugf("sorted %d values", len(sorted))

			if config.Run.Print {
				fmt.Fprintln(cmd.OutOrStdout(), ss.FormatNumbers(sorted))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&override.Input.Path, "file", "", "Input text file path (default: data.txt)")
	cmd.Flags().StringVar(&override.Run.Algorithm, "algo", "", "Sorting algorithm to use: "+str.Join(ss.DefaultRegistry().Names(), ", "))
	cmd.Flags().IntVar(&override.Input.Limit, "limit", 0, fmt.Sprintf("Maximum number of items to read (default: %d)", ss.DefaultLimit))
	cmd.Flags().BoolVar(&override.Run.Print, "print", false, "Print sorted result to stdout")

	return cmd
}
