/*
PURPOSE:
  Reads solver CSV output into numeric series and tables.

REQUIREMENTS:
  User-specified:
  - Two-column (x, y) graph files, with or without a header row.
  - Headerless metrics files with at least six numeric columns.

  Implementation-discovered:
  - The solver separates fields with ", " so leading spaces must be trimmed.
  - Rows can be ragged; only the columns we select must be present.
  - ParseFloat accepts "nan" and "inf"; those are rejected in the columns we
    select so one bad file cannot poison a chart range or an average.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Produces: internal/model.Series, internal/model.Table

ERROR HANDLING:
  - Every failure is a *ParseError carrying path and line.
  - ErrNoData / ErrShortRow / ErrNotFinite are matchable with errors.Is.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Never return a partially filled series alongside an error.

USAGE:
  s, err := csvdata.ReadSeries(path, "AvgFeasCost", csvdata.SeriesOptions{XCol: 0, YCol: 1})
  t, err := csvdata.ReadTable(metricsPath, model.MetricsColumns)

SELF-HEALING INSTRUCTIONS:
  - If the solver changes its separator, adjust the csv.Reader settings in
    readRows() only; callers never see raw fields.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Keep model.MetricsColumns in sync with the metrics column layout.
*/

package csvdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/daryltucker/runplot/internal/model"
)

var (
	// ErrNoData is returned when a file holds no data rows.
	ErrNoData = errors.New("no data rows")
	// ErrShortRow is returned when a row lacks a required column.
	ErrShortRow = errors.New("row has too few columns")
	// ErrNotFinite is returned for NaN or infinite values in a selected column.
	ErrNotFinite = errors.New("value is not finite")
)

// ParseError describes where a CSV file failed to parse.
type ParseError struct {
	Path   string
	Line   int // 0 when the failure is not tied to a row
	Column int // -1 when the failure is not tied to a column
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	case e.Column < 0:
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s:%d: column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// SeriesOptions selects the columns of a series file.
type SeriesOptions struct {
	Header bool
	XCol   int
	YCol   int
}

// ReadSeries reads one (x, y) series from path.
func ReadSeries(path, name string, opts SeriesOptions) (model.Series, error) {
	need := max(opts.XCol, opts.YCol) + 1
	rows, err := readRows(path, need, opts.Header)
	if err != nil {
		return model.Series{}, err
	}

	points := make([]model.Point, len(rows))
	for i, row := range rows {
		points[i] = model.Point{X: row[opts.XCol], Y: row[opts.YCol]}
	}
	return model.Series{Name: name, Points: points}, nil
}

// ReadTable reads a headerless numeric table whose rows have at least minCols columns.
func ReadTable(path string, minCols int) (model.Table, error) {
	rows, err := readRows(path, minCols, false)
	if err != nil {
		return nil, err
	}
	return model.Table(rows), nil
}

func readRows(path string, minCols int, header bool) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Column: -1, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]float64
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Column: -1, Err: err}
		}
		line, _ := r.FieldPos(0)
		if first && header {
			first = false
			continue
		}
		first = false

		if len(record) < minCols {
			return nil, &ParseError{
				Path:   path,
				Line:   line,
				Column: -1,
				Err:    fmt.Errorf("%w: want %d, got %d", ErrShortRow, minCols, len(record)),
			}
		}

		row := make([]float64, len(record))
		for c, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				// Columns we never read may carry anything.
				if c >= minCols {
					continue
				}
				return nil, &ParseError{Path: path, Line: line, Column: c, Err: err}
			}
			if c < minCols && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, &ParseError{Path: path, Line: line, Column: c, Err: fmt.Errorf("%w: %q", ErrNotFinite, field)}
			}
			row[c] = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, &ParseError{Path: path, Column: -1, Err: ErrNoData}
	}
	return rows, nil
}
