package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("0, 1\n"), 0o644))
	}
}

func TestDiscover_FindsTriple(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "X-n101 - Metrics.csv", "X-n101-AvgFeasCost.csv", "X-n101-MinFeasCost.csv")

	fs, err := Discover(dir, DefaultSuffixes(), PolicyLast)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "X-n101 - Metrics.csv"), fs.Metrics)
	assert.Equal(t, filepath.Join(dir, "X-n101-AvgFeasCost.csv"), fs.AvgCost)
	assert.Equal(t, filepath.Join(dir, "X-n101-MinFeasCost.csv"), fs.MinCost)
}

func TestDiscover_MissingCategory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "X - Metrics.csv", "X-AvgFeasCost.csv")

	_, err := Discover(dir, DefaultSuffixes(), PolicyLast)

	var me *MissingError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, dir, me.Dir)
	assert.Equal(t, []string{"min-cost"}, me.Missing)
	assert.Contains(t, err.Error(), dir)
}

func TestDiscover_UnrelatedFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"X - Metrics.csv", "X-AvgFeasCost.csv", "X-MinFeasCost.csv",
		"X-AvgInfeasCost.csv", "X-Metrics.csv", "Y-minfeascost.csv", "notes.txt",
		"X-AvgFeasCost.csv.bak",
	)

	fs, err := Discover(dir, DefaultSuffixes(), PolicyError)
	require.NoError(t, err)

	assert.Equal(t, "X - Metrics.csv", filepath.Base(fs.Metrics))
	assert.Equal(t, "X-AvgFeasCost.csv", filepath.Base(fs.AvgCost))
	assert.Equal(t, "X-MinFeasCost.csv", filepath.Base(fs.MinCost))
}

func TestDiscover_SubdirectoriesNotMatched(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "X - Metrics.csv", "X-AvgFeasCost.csv")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "X-MinFeasCost.csv"), 0o755))

	_, err := Discover(dir, DefaultSuffixes(), PolicyLast)
	var me *MissingError
	assert.True(t, errors.As(err, &me))
}

func TestDiscover_DuplicateLastWins(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "B - Metrics.csv", "A - Metrics.csv", "X-AvgFeasCost.csv", "X-MinFeasCost.csv")

	fs, err := Discover(dir, DefaultSuffixes(), PolicyLast)
	require.NoError(t, err)
	assert.Equal(t, "B - Metrics.csv", filepath.Base(fs.Metrics))
}

func TestDiscover_DuplicateErrorPolicy(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "B - Metrics.csv", "A - Metrics.csv", "X-AvgFeasCost.csv", "X-MinFeasCost.csv")

	_, err := Discover(dir, DefaultSuffixes(), PolicyError)

	var de *DuplicateError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, []string{"A - Metrics.csv", "B - Metrics.csv"}, de.Files)
}

func TestDiscover_NoDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"), DefaultSuffixes(), PolicyLast)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
