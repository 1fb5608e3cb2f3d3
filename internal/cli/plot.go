/*
PURPOSE:
  Defines the plot-csvs command: plot three CSV files from one directory.

REQUIREMENTS:
  User-specified:
  - plot-csvs <subdirectory> <file1> <file2> <file3>
  - Shows the chart interactively; per-file errors do not change the exit code.

  Implementation-discovered:
  - --out saves the chart instead of opening a window (headless use).
  - --no-header for solver files that carry no header row.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.PlotFiles, internal/engine.Present
  - The Presenter (a fyne window in cmd/plot-csvs) is injected so this
    package and its tests stay free of cgo.

ERROR HANDLING:
  - Only a wrong argument count, config errors and render/presenter
    failures are returned.

USAGE:
  plot-csvs "Stats Files/X-n101" a.csv b.csv c.csv

RELATED FILES:
  - internal/engine/plotfiles.go
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/runplot/internal/engine"
)

// NewPlotCommand builds the plot-csvs root command; charts are shown through presenter.
func NewPlotCommand(presenter engine.Presenter) *cobra.Command {
	var (
		g        globalFlags
		out      string
		noHeader bool
	)

	cmd := newRoot(
		"plot-csvs <subdirectory> <file1> <file2> <file3>",
		"Plot 3 CSV files from a subdirectory",
		`Reads three CSV files (header row, x = column 0, y = column 1) from a
subdirectory and plots them as line series on one chart.

Files that cannot be read are reported and skipped.`,
	)
	cmd.Example = `  # Show a chart of three convergence files
  plot-csvs "Stats Files/X-n101" X-n101-AvgFeasCost.csv X-n101-MinFeasCost.csv X-n101-AvgInfeasCost.csv

  # Save instead of showing
  plot-csvs runs/A a.csv b.csv c.csv --out combined.png`
	cmd.Args = cobra.ExactArgs(1 + engine.PlotFileCount)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := g.load(cmd, nil)
		if err != nil {
			return err
		}

		c, err := engine.PlotFiles(args[0], args[1:], engine.PlotOptions{
			Header: !noHeader,
			Chart:  cfg.Chart,
		})
		if err != nil {
			return err
		}

		if out != "" {
			if err := c.Save(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plot saved as: %s\n", out)
			return nil
		}
		return engine.Present(c, presenter)
	}

	g.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "save the chart to this .png/.svg file instead of displaying it")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "treat the first row of each file as data")
	return cmd
}
