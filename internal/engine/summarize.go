/*
PURPOSE:
  run-summary pipeline: discover the metrics/avg/min triple of a run
  directory, print the summary statistics and save the cost chart.

REQUIREMENTS:
  User-specified:
  - discovering -> aggregating -> rendering -> persisting; every failure is terminal.
  - No statistic is printed and no image written unless all three files exist.
  - Metrics parsing is all-or-nothing; the avg/min series are best-effort each.

  Implementation-discovered:
  - The image is named after the cleaned directory; "." resolves to the
    absolute directory name so the file is never called "..png".
  - Optional CSV/JSONL summary exports run after the report is printed.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (run-summary)
  - Uses: internal/discovery, internal/csvdata, internal/stats, internal/plot, internal/output

ERROR HANDLING:
  - Discovery, metrics and persistence errors are returned wrapped.
  - Series read errors are logged and skipped.

USAGE:
  rep, err := engine.Summarize("Stats Files/X-n101", 27591, cfg, os.Stdout)

SELF-HEALING INSTRUCTIONS:
  - If the printed format changes, update WriteSummary() and the CLI tests
    that match its lines.
  - If a new file category is added, extend model.FileSet and discovery first.

RELATED FILES:
  - internal/cli/summary.go
  - internal/stats/stats.go

MAINTENANCE:
  - Keep the stage order: nothing is printed before the metrics succeed.
*/

package engine

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/daryltucker/runplot/internal/config"
	"github.com/daryltucker/runplot/internal/csvdata"
	"github.com/daryltucker/runplot/internal/discovery"
	"github.com/daryltucker/runplot/internal/model"
	"github.com/daryltucker/runplot/internal/output"
	"github.com/daryltucker/runplot/internal/plot"
	"github.com/daryltucker/runplot/internal/stats"
)

// SummaryTitle is the title of the run-summary chart.
const SummaryTitle = "AvgFeasCost & MinFeasCost with BKS Line"

// Report is the outcome of a successful Summarize.
type Report struct {
	Files   model.FileSet
	Summary model.Summary
	// Series lists the cost series that made it onto the chart.
	Series []string
	Image  string
}

// OutputPath returns where the chart of dir is saved: <dir>/<base(dir)><ext>.
func OutputPath(dir, ext string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		if abs, err := filepath.Abs(dir); err == nil {
			base = filepath.Base(abs)
		}
	}
	return filepath.Join(dir, base+ext)
}

// FormatValue prints v in its shortest form, keeping a ".0" on integral values.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// WriteSummary prints the labelled statistics of s to w.
func WriteSummary(w io.Writer, s model.Summary) error {
	_, err := fmt.Fprintf(w, "%s:\nAvg: %s\nGap: %s%%\nAvgTime: %s\nAvgTotIt: %s\n",
		s.Dir,
		FormatValue(s.Avg),
		FormatValue(s.GapPct),
		FormatValue(s.AvgTime),
		FormatValue(s.AvgTotIt),
	)
	return err
}

// Summarize runs the full pipeline for one run directory. The statistics
// report is written to w.
func Summarize(dir string, bks float64, cfg *config.Config, w io.Writer) (*Report, error) {
	// discovering
	files, err := discovery.Discover(dir, cfg.Suffixes, cfg.Duplicates)
	if err != nil {
		return nil, err
	}
	output.Logger.Debug("Discovered files", "dir", dir, "metrics", files.Metrics, "avg", files.AvgCost, "min", files.MinCost)

	// aggregating
	table, err := csvdata.ReadTable(files.Metrics, model.MetricsColumns)
	if err != nil {
		return nil, fmt.Errorf("error reading metrics file: %w", err)
	}
	summary, err := stats.Summarize(dir, table, bks, cfg.Precision)
	if err != nil {
		return nil, fmt.Errorf("error summarizing metrics file %s: %w", files.Metrics, err)
	}
	if err := WriteSummary(w, summary); err != nil {
		return nil, fmt.Errorf("failed to print summary: %w", err)
	}
	exportSummary(cfg, summary)

	// rendering
	report := &Report{Files: files, Summary: summary}
	c := plot.New(SummaryTitle, "X", "Y", cfg.Chart)
	for _, src := range []struct{ path, label string }{
		{files.AvgCost, "AvgFeasCost"},
		{files.MinCost, "MinFeasCost"},
	} {
		s, err := csvdata.ReadSeries(src.path, src.label, csvdata.SeriesOptions{XCol: 0, YCol: 1})
		if err != nil {
			output.Logger.Error("Error reading series file", "series", src.label, "error", err)
			continue
		}
		c.AddSeries(s)
		report.Series = append(report.Series, src.label)
	}
	c.AddReferenceLine(bks, "BKS: "+FormatValue(bks))

	// persisting
	report.Image = OutputPath(dir, cfg.ImageExt)
	if err := c.Save(report.Image); err != nil {
		return nil, fmt.Errorf("failed to save plot: %w", err)
	}
	output.Logger.Debug("Plot saved", "path", report.Image, "series", report.Series)
	if _, err := fmt.Fprintf(w, "Plot saved as: %s\n", report.Image); err != nil {
		return nil, fmt.Errorf("failed to print summary: %w", err)
	}
	return report, nil
}

// exportSummary appends s to the configured summary files. Failures are logged only.
func exportSummary(cfg *config.Config, s model.Summary) {
	if cfg.SummaryCSV != "" {
		cw, err := output.NewCSVWriter(cfg.SummaryCSV)
		if err != nil {
			output.Logger.Error("Failed to open summary CSV", "path", cfg.SummaryCSV, "error", err)
		} else {
			if err := cw.Write(s); err != nil {
				output.Logger.Error("Failed to write summary to CSV", "path", cfg.SummaryCSV, "error", err)
			}
			cw.Close()
		}
	}
	if cfg.SummaryJSON != "" {
		jw, err := output.NewJSONWriter(cfg.SummaryJSON)
		if err != nil {
			output.Logger.Error("Failed to open summary JSON", "path", cfg.SummaryJSON, "error", err)
		} else {
			if err := jw.Write(s); err != nil {
				output.Logger.Error("Failed to write summary to JSON", "path", cfg.SummaryJSON, "error", err)
			}
			jw.Close()
		}
	}
}
