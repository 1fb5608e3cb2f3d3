/*
PURPOSE:
  Entry point for plot-csvs: plots three CSV files from one directory.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.ExecutePlot()
  - Wires internal/display (fyne) as the chart presenter.

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o plot-csvs ./cmd/plot-csvs
  ./plot-csvs <subdirectory> <file1> <file2> <file3>
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/runplot/internal/cli"
	"github.com/daryltucker/runplot/internal/display"
)

func main() {
	if err := cli.ExecutePlot(display.Window{AppID: "io.runplot.plotcsvs"}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
