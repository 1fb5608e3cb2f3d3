/*
PURPOSE:
  Appends run summaries to a CSV file so repeated invocations build up a table.

REQUIREMENTS:
  User-specified:
  - Optional --summary-csv export of the printed statistics.

  Implementation-discovered:
  - The file is appended to across invocations; the header is written only
    when the file is new or empty.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Summary

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.

USAGE:
  w, err := output.NewCSVWriter("summaries.csv")
  w.Write(summary)
  w.Close()

MAINTENANCE:
  - Update header and Write() mapping when Summary changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/runplot/internal/model"
)

var summaryHeader = []string{
	"dir", "bks", "runs", "avg", "gap_pct", "avg_time", "avg_tot_it",
	"best", "best_gap_pct", "avg_speed",
}

// CSVWriter appends summaries to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter opens path for appending, writing the header if the file is empty.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(summaryHeader); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
	}

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Write appends a single summary row.
func (cw *CSVWriter) Write(s model.Summary) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		s.Dir,
		formatFloat(s.BKS),
		strconv.Itoa(s.Runs),
		formatFloat(s.Avg),
		formatFloat(s.GapPct),
		formatFloat(s.AvgTime),
		formatFloat(s.AvgTotIt),
		formatFloat(s.Best),
		formatFloat(s.BestGapPct),
		formatFloat(s.AvgSpeed),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
