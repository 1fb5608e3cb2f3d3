/*
PURPOSE:
  Entry point for run-summary: prints run statistics and saves the
  avg/min feasible cost chart with the BKS line.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.ExecuteSummary()

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o run-summary ./cmd/run-summary
  ./run-summary <subdirectory> <bks_value>
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/runplot/internal/cli"
)

func main() {
	if err := cli.ExecuteSummary(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
