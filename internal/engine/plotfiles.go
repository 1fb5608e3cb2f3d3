/*
PURPOSE:
  plot-csvs pipeline: load three CSV files from a directory and build one
  combined line chart.

REQUIREMENTS:
  User-specified:
  - Exactly three file names, resolved relative to the directory, order kept.
  - A file that fails to load is reported and skipped; the others still plot.

  Implementation-discovered:
  - Files carry a header row by default; x = column 0, y = column 1.
  - With zero loadable files the empty titled chart is still shown; the
    per-file errors are the only signal and the exit code stays 0.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (plot-csvs)
  - Uses: internal/csvdata, internal/plot, internal/output

ERROR HANDLING:
  - Logs per-file errors but continues (resilience).
  - Only a wrong file count or a render/presenter failure is returned.

USAGE:
  c, err := engine.PlotFiles(dir, []string{"a.csv", "b.csv", "c.csv"}, opts)
  err = engine.Present(c, display.Window{AppID: "io.runplot.plotcsvs"})

SELF-HEALING INSTRUCTIONS:
  - If a file is silently missing from the chart, run with --log-level debug;
    every load and every skip is logged with the file name.

RELATED FILES:
  - internal/cli/plot.go
  - internal/display/display.go
*/

package engine

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/daryltucker/runplot/internal/csvdata"
	"github.com/daryltucker/runplot/internal/output"
	"github.com/daryltucker/runplot/internal/plot"
)

// PlotFileCount is the number of files plot-csvs takes.
const PlotFileCount = 3

// CombinedTitle is the title of the plot-csvs chart.
const CombinedTitle = "Combined Plot of CSV Files"

// Presenter shows a rendered chart to the user.
type Presenter interface {
	Show(title string, img image.Image) error
}

// PlotOptions configures PlotFiles.
type PlotOptions struct {
	Header bool
	Chart  plot.Options
}

// PlotFiles reads each file under dir and adds it to a new chart as one series.
func PlotFiles(dir string, files []string, opts PlotOptions) (*plot.Chart, error) {
	if len(files) != PlotFileCount {
		return nil, fmt.Errorf("expected %d files, got %d", PlotFileCount, len(files))
	}

	c := plot.New(CombinedTitle, "X", "Y", opts.Chart)
	for _, name := range files {
		path := filepath.Join(dir, name)
		s, err := csvdata.ReadSeries(path, name, csvdata.SeriesOptions{Header: opts.Header, XCol: 0, YCol: 1})
		if err != nil {
			output.Logger.Error("Error reading file", "file", name, "error", err)
			continue
		}
		output.Logger.Debug("Loaded series", "file", name, "points", len(s.Points))
		c.AddSeries(s)
	}

	if c.SeriesCount() == 0 {
		output.Logger.Warn("No file could be read; the chart is empty", "dir", dir)
	}
	return c, nil
}

// Present renders c and hands the image to p.
func Present(c *plot.Chart, p Presenter) error {
	img, err := c.Image()
	if err != nil {
		return err
	}
	return p.Show(c.Title(), img)
}
