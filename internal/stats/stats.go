/*
PURPOSE:
  Aggregates a metrics table into the rounded run summary.

REQUIREMENTS:
  User-specified:
  - Avg of cost, AvgTime and AvgTotIt rounded to 1 decimal.
  - Gap% versus the BKS rounded to 3 decimals, computed from the rounded Avg.

  Implementation-discovered:
  - A zero, NaN or infinite BKS must be an error, never Inf/NaN output.
  - Rounding follows strconv's decimal formatting (half-to-even on the exact binary value).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Table

ERROR HANDLING:
  - Returns sentinel errors (ErrEmpty, ErrZeroReference, ErrBadReference).

RELATED FILES:
  - internal/model/types.go

USAGE:
  s, err := stats.Summarize(dir, table, 27591, stats.DefaultPrecision())

SELF-HEALING INSTRUCTIONS:
  - If printed values drift by one in the last digit, check Round(); it must
    stay on strconv formatting, not math.Round.
*/

package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/daryltucker/runplot/internal/model"
)

var (
	ErrEmpty         = errors.New("no values")
	ErrZeroReference = errors.New("reference value is zero")
	ErrBadReference  = errors.New("reference value is not a finite number")
)

// Precision holds the decimal places used for each aggregate.
type Precision struct {
	Avg        int `yaml:"avg"`
	Gap        int `yaml:"gap"`
	Time       int `yaml:"time"`
	Iterations int `yaml:"iterations"`
}

// DefaultPrecision is 1 decimal for means and 3 for the gap.
func DefaultPrecision() Precision {
	return Precision{Avg: 1, Gap: 3, Time: 1, Iterations: 1}
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Min returns the smallest of values.
func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	m := values[0]
	for _, v := range values[1:] {
		m = math.Min(m, v)
	}
	return m, nil
}

// Round rounds v to places decimals. The exact binary value is rounded
// half-to-even, so 20.05 (stored as 20.0500000000000007) becomes 20.1
// while the exact tie 0.25 becomes 0.2.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return r
}

// CheckReference rejects reference values that cannot serve as a gap baseline.
func CheckReference(ref float64) error {
	if math.IsNaN(ref) || math.IsInf(ref, 0) {
		return fmt.Errorf("%w: %v", ErrBadReference, ref)
	}
	if ref == 0 {
		return ErrZeroReference
	}
	return nil
}

// Gap returns the percentage deviation of value from ref.
func Gap(value, ref float64) (float64, error) {
	if err := CheckReference(ref); err != nil {
		return 0, err
	}
	return (value - ref) / ref * 100, nil
}

// Summarize computes the run summary of a metrics table against bks.
func Summarize(dir string, t model.Table, bks float64, p Precision) (model.Summary, error) {
	if err := CheckReference(bks); err != nil {
		return model.Summary{}, err
	}
	if len(t) == 0 {
		return model.Summary{}, ErrEmpty
	}
	for i, row := range t {
		if len(row) < model.MetricsColumns {
			return model.Summary{}, fmt.Errorf("row %d: want %d columns, got %d", i+1, model.MetricsColumns, len(row))
		}
	}

	costs := t.Column(model.ColCost)
	// Inputs are non-empty and the reference is valid past this point.
	avgCost, _ := Mean(costs)
	best, _ := Min(costs)
	avgTime, _ := Mean(t.Column(model.ColElapsed))
	avgIt, _ := Mean(t.Column(model.ColTotalIteration))
	avgSpeed, _ := Mean(t.Column(model.ColBestIteration))

	s := model.Summary{
		Dir:      dir,
		BKS:      bks,
		Runs:     len(t),
		Avg:      Round(avgCost, p.Avg),
		AvgTime:  Round(avgTime, p.Time),
		AvgTotIt: Round(avgIt, p.Iterations),
		Best:     Round(best, p.Avg),
		AvgSpeed: Round(avgSpeed, p.Iterations),
	}
	gap, _ := Gap(s.Avg, bks)
	bestGap, _ := Gap(s.Best, bks)
	s.GapPct = Round(gap, p.Gap)
	s.BestGapPct = Round(bestGap, p.Gap)

	if math.IsInf(s.GapPct, 0) || math.IsNaN(s.GapPct) {
		return model.Summary{}, fmt.Errorf("gap is not finite (avg=%v, bks=%v)", s.Avg, bks)
	}
	return s, nil
}
