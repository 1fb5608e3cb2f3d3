package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/runplot/internal/model"
)

// metricsTable builds rows with the given costs; elapsed and iteration columns are derived from the index.
func metricsTable(costs ...float64) model.Table {
	t := make(model.Table, len(costs))
	for i, c := range costs {
		t[i] = []float64{float64(i), 1000 + float64(i), c, float64(100 * (i + 1)), float64(i + 1), float64(1000 * (i + 1))}
	}
	return t
}

func TestMean(t *testing.T) {
	m, err := Mean([]float64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, 20.0, m)

	_, err = Mean(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestMin(t *testing.T) {
	m, err := Min([]float64{3, -1, 2})
	require.NoError(t, err)
	assert.Equal(t, -1.0, m)

	_, err = Min(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{20.05, 1, 20.1}, // stored slightly above the tie
		{0.25, 1, 0.2},   // exact tie goes to even
		{0.75, 1, 0.8},
		{2.5, 0, 2},
		{-1.25, 1, -1.2},
		{1.23456, 3, 1.235},
		{20, 1, 20},
		{1033.333333, 1, 1033.3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.v, tt.places), "Round(%v, %d)", tt.v, tt.places)
	}
	assert.True(t, math.IsNaN(Round(math.NaN(), 1)))
}

func TestGap(t *testing.T) {
	g, err := Gap(1050, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, g, 1e-9)

	_, err = Gap(10, 0)
	assert.ErrorIs(t, err, ErrZeroReference)

	_, err = Gap(10, math.Inf(1))
	assert.ErrorIs(t, err, ErrBadReference)

	_, err = Gap(10, math.NaN())
	assert.ErrorIs(t, err, ErrBadReference)
}

func TestSummarize_MeanEqualsReference_ZeroGap(t *testing.T) {
	// GIVEN costs 10, 20, 30 and a BKS of 20
	s, err := Summarize("runs/a", metricsTable(10, 20, 30), 20, DefaultPrecision())
	require.NoError(t, err)

	// THEN Avg is 20.0 and the gap is 0.0
	assert.Equal(t, 20.0, s.Avg)
	assert.Equal(t, 0.0, s.GapPct)
	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, "runs/a", s.Dir)
}

func TestSummarize_AllAggregates(t *testing.T) {
	s, err := Summarize("d", metricsTable(1030, 1040, 1031), 1000, DefaultPrecision())
	require.NoError(t, err)

	assert.Equal(t, 1033.7, s.Avg)    // 1033.666...
	assert.Equal(t, 3.37, s.GapPct)   // 3.37 exactly after rounding to 3 places
	assert.Equal(t, 2.0, s.AvgTime)   // mean(1, 2, 3)
	assert.Equal(t, 2000.0, s.AvgTotIt)
	assert.Equal(t, 200.0, s.AvgSpeed)
	assert.Equal(t, 1030.0, s.Best)
	assert.Equal(t, 3.0, s.BestGapPct)
}

func TestSummarize_GapUsesRoundedAverage(t *testing.T) {
	// mean 20.05 rounds to 20.1 first; the gap is computed from 20.1
	s, err := Summarize("d", metricsTable(20, 20.1), 20, DefaultPrecision())
	require.NoError(t, err)

	assert.Equal(t, 20.1, s.Avg)
	assert.Equal(t, 0.5, s.GapPct)
}

func TestSummarize_ZeroReferenceIsError(t *testing.T) {
	_, err := Summarize("d", metricsTable(10, 20), 0, DefaultPrecision())
	assert.ErrorIs(t, err, ErrZeroReference)
}

func TestSummarize_ShortRow(t *testing.T) {
	_, err := Summarize("d", model.Table{{0, 1, 2}}, 10, DefaultPrecision())
	assert.Error(t, err)
}

func TestSummarize_EmptyTable(t *testing.T) {
	_, err := Summarize("d", nil, 10, DefaultPrecision())
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSummarize_CustomPrecision(t *testing.T) {
	p := Precision{Avg: 2, Gap: 1, Time: 0, Iterations: 0}
	s, err := Summarize("d", metricsTable(10.333, 10.333), 10, p)
	require.NoError(t, err)

	assert.Equal(t, 10.33, s.Avg)
	assert.Equal(t, 3.3, s.GapPct)
	assert.Equal(t, 2.0, s.AvgTime) // mean(1, 2) = 1.5, half-to-even
}
