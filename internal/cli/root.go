/*
PURPOSE:
  Defines the root Cobra commands for the two runplot binaries and the
  flags they share.

REQUIREMENTS:
  User-specified:
  - Positional arguments only for the core behavior.

  Implementation-discovered:
  - Both tools accept --config and --log-level.
  - Config is loaded first, then flags override it (flag > file > default).

ARCHITECTURE INTEGRATION:
  - Called by: cmd/plot-csvs/main.go, cmd/run-summary/main.go
  - Calls: internal/config, internal/output

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Errors are silenced in cobra so main prints them exactly once.

IMPLEMENTATION RULES:
  - Keep Run logic in plot.go / summary.go.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/runplot/internal/config"
	"github.com/daryltucker/runplot/internal/engine"
	"github.com/daryltucker/runplot/internal/output"
)

// globalFlags are registered on every root command.
type globalFlags struct {
	cfgFile  string
	logLevel string
}

func (g *globalFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&g.cfgFile, "config", "", "config file (default is ./runplot.yaml or ./.runplot.yaml)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// load reads config, applies the global flag overrides and configures logging.
func (g *globalFlags) load(cmd *cobra.Command, apply func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(g.cfgFile)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if apply != nil {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := output.Init(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRoot(use, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// ExecutePlot runs the plot-csvs command.
func ExecutePlot(presenter engine.Presenter) error {
	return NewPlotCommand(presenter).Execute()
}

// ExecuteSummary runs the run-summary command.
func ExecuteSummary() error {
	return NewSummaryCommand().Execute()
}
