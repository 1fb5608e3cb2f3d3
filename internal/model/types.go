/*
PURPOSE:
  Defines the core data structures used throughout runplot.
  These models represent parsed CSV series, metrics tables and run summaries.

REQUIREMENTS:
  User-specified:
  - Plot (x, y) series read from solver CSV output.
  - Summarize per-run cost, elapsed time and iteration counts.

  Implementation-discovered:
  - The solver writes metrics rows as: run, seed, bestCost, bestIteration, elapsed, totalIterations.
  - Need JSON tags for the summary JSONL export.

ARCHITECTURE INTEGRATION:
  - Used by: internal/csvdata, internal/stats, internal/plot, internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Values are never mutated after construction.

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update the column constants if the solver's metrics layout changes.
*/

package model

// Metrics table column indices.
const (
	ColRun            = 0
	ColSeed           = 1
	ColCost           = 2
	ColBestIteration  = 3
	ColElapsed        = 4
	ColTotalIteration = 5

	// MetricsColumns is the minimum number of columns a metrics row must carry.
	MetricsColumns = 6
)

// Point is a single (x, y) sample.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered, named sequence of points read from one file.
type Series struct {
	Name   string
	Points []Point
}

// XValues returns the x coordinates in order.
func (s Series) XValues() []float64 {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return xs
}

// YValues returns the y coordinates in order.
func (s Series) YValues() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.Y
	}
	return ys
}

// Table is a headerless numeric table. Rows may be ragged.
type Table [][]float64

// Column returns column c of every row. Callers must ensure each row is wide enough.
func (t Table) Column(c int) []float64 {
	out := make([]float64, len(t))
	for i, row := range t {
		out[i] = row[c]
	}
	return out
}

// FileSet is the discovered metrics/avg/min file triple of one run directory.
type FileSet struct {
	Metrics string
	AvgCost string
	MinCost string
}

// Summary holds the rounded aggregates of one run directory.
type Summary struct {
	Dir        string  `json:"dir"`
	BKS        float64 `json:"bks"`
	Runs       int     `json:"runs"`
	Avg        float64 `json:"avg"`
	GapPct     float64 `json:"gap_pct"`
	AvgTime    float64 `json:"avg_time"`
	AvgTotIt   float64 `json:"avg_tot_it"`
	Best       float64 `json:"best"`
	BestGapPct float64 `json:"best_gap_pct"`
	AvgSpeed   float64 `json:"avg_speed"`
}
