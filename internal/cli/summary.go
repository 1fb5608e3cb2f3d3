/*
PURPOSE:
  Defines the run-summary command: summarize a run directory and save its
  cost chart with the BKS line.

REQUIREMENTS:
  User-specified:
  - run-summary <subdirectory> <bks_value>
  - Prints Avg / Gap% / AvgTime / AvgTotIt and saves <dir>/<base>.png.

  Implementation-discovered:
  - Flags override the config file for exports and duplicate policy.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Summarize

ERROR HANDLING:
  - Invalid BKS and pipeline failures are returned (exit code 1 in main).

USAGE:
  run-summary "Stats Files/X-n101-k25" 27591

RELATED FILES:
  - internal/engine/summarize.go
*/

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daryltucker/runplot/internal/config"
	"github.com/daryltucker/runplot/internal/engine"
	"github.com/daryltucker/runplot/internal/stats"
)

// NewSummaryCommand builds the run-summary root command.
func NewSummaryCommand() *cobra.Command {
	var (
		g           globalFlags
		summaryCSV  string
		summaryJSON string
		duplicates  string
	)

	cmd := newRoot(
		"run-summary <subdirectory> <bks_value>",
		"Process Metrics CSV and plot Avg/Min Feas Cost with BKS",
		`Finds the "<name> - Metrics.csv", "<name>-AvgFeasCost.csv" and
"<name>-MinFeasCost.csv" files in a subdirectory, prints the average cost,
its gap to the best known solution (BKS), the average time and the average
total iterations, then saves a chart of the avg/min feasible cost with a BKS
line as <subdirectory>/<name of subdirectory>.png.`,
	)
	cmd.Example = `  run-summary "Stats Files/X-n101-k25" 27591

  # Collect summaries of several runs into one table
  run-summary runs/A 27591 --summary-csv summaries.csv`
	cmd.Args = cobra.ExactArgs(2)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		bks, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid bks_value %q: %w", args[1], err)
		}
		if err := stats.CheckReference(bks); err != nil {
			return fmt.Errorf("invalid bks_value %q: %w", args[1], err)
		}

		cfg, err := g.load(cmd, func(cfg *config.Config) {
			if summaryCSV != "" {
				cfg.SummaryCSV = summaryCSV
			}
			if summaryJSON != "" {
				cfg.SummaryJSON = summaryJSON
			}
			if duplicates != "" {
				cfg.Duplicates = duplicates
			}
		})
		if err != nil {
			return err
		}

		_, err = engine.Summarize(args[0], bks, cfg, cmd.OutOrStdout())
		return err
	}

	g.register(cmd)
	cmd.Flags().StringVar(&summaryCSV, "summary-csv", "", "append the summary as a row to this CSV file")
	cmd.Flags().StringVar(&summaryJSON, "summary-json", "", "append the summary as a line to this JSON Lines file")
	cmd.Flags().StringVar(&duplicates, "duplicates", "", "policy when several files match a suffix: last or error")
	return cmd
}
