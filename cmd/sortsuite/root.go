package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	ss "nickandperla.net/sort_suite"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	profile    string
	profileDir string

	config  *ss.ToolConfig
	stopper interface{ Stop() }
}

// RootCommand owns the shared flags so a running profile can be stopped
// whether or not the subcommand succeeded.
type RootCommand struct {
	*cobra.Command
	g *globalFlags
}

// Execute runs the command tree and always stops a profile started by the
// pre-run hook. Cobra skips post-run hooks when RunE fails.
func (r *RootCommand) Execute() error {
	defer r.g.stopProfile()
	return r.Command.Execute()
}

func NewRootCommand() *RootCommand {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "sortsuite",
		Short:         "Sort integers with a selectable algorithm and time the suite",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := ss.LoadToolConfig(g.configPath)
			if err != nil {
				return err
			}
			if g.logLevel != "" {
				config.LogLevel = g.logLevel
			}
			if err := ss.SetLogLevel(config.LogLevel); err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			g.config = config

			return g.startProfile()
		},
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "TOML config file (defaults are used when empty)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&g.profile, "profile", "", "Write a cpu or mem profile")
	cmd.PersistentFlags().StringVar(&g.profileDir, "profile-dir", ".", "Directory for profile output")

	cmd.AddCommand(
		NewSortCommand(g),
		NewBenchCommand(g),
		NewGenCommand(g),
		NewStatsCommand(g),
	)
	return &RootCommand{Command: cmd, g: g}
}

func (g *globalFlags) startProfile() error {
	switch g.profile {
	case "":
		return nil
	case "cpu":
		g.stopper = profile.Start(profile.CPUProfile, profile.ProfilePath(g.profileDir), profile.Quiet, profile.NoShutdownHook)
	case "mem":
		g.stopper = profile.Start(profile.MemProfile, profile.ProfilePath(g.profileDir), profile.Quiet, profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile %q, expected cpu or mem", g.profile)
	}
	return nil
}

func (g *globalFlags) stopProfile() {
	if g.stopper != nil {
		g.stopper.Stop()
		g.stopper = nil
	}
}
