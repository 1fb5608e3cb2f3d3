/*
PURPOSE:
  Locates the metrics / avg-cost / min-cost file triple of a run directory.

REQUIREMENTS:
  User-specified:
  - Match immediate directory entries by exact, case-sensitive suffix.
  - All three files must exist or nothing else happens.

  Implementation-discovered:
  - Duplicate matches need a deterministic rule; os.ReadDir sorts by name,
    so "last wins" means lexicographically last.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.Summarize
  - Produces: internal/model.FileSet

ERROR HANDLING:
  - *MissingError when a category has no match.
  - *DuplicateError under the "error" duplicate policy.

RELATED FILES:
  - internal/config/config.go (suffixes, duplicate policy)

USAGE:
  fs, err := discovery.Discover(dir, discovery.DefaultSuffixes(), discovery.PolicyLast)

SELF-HEALING INSTRUCTIONS:
  - If a run directory is reported incomplete, compare its names with the
    configured suffixes; matching is exact and case-sensitive.

MAINTENANCE:
  - Add a Suffixes field and a FileSet field together for a new category.
*/

package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/runplot/internal/model"
	"github.com/daryltucker/runplot/internal/output"
)

// Duplicate policies.
const (
	PolicyLast  = "last"
	PolicyError = "error"
)

// Suffixes are the file name tails identifying each file of the triple.
type Suffixes struct {
	Metrics string `yaml:"metrics"`
	AvgCost string `yaml:"avg_cost"`
	MinCost string `yaml:"min_cost"`
}

// DefaultSuffixes returns the solver's naming convention.
func DefaultSuffixes() Suffixes {
	return Suffixes{
		Metrics: " - Metrics.csv",
		AvgCost: "-AvgFeasCost.csv",
		MinCost: "-MinFeasCost.csv",
	}
}

// MissingError reports which categories had no matching file.
type MissingError struct {
	Dir     string
	Missing []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("could not find all required CSV files in %s (missing %s)", e.Dir, strings.Join(e.Missing, ", "))
}

// DuplicateError reports more than one file matching a single suffix.
type DuplicateError struct {
	Dir    string
	Suffix string
	Files  []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %d files match %q: %s", e.Dir, len(e.Files), e.Suffix, strings.Join(e.Files, ", "))
}

// Discover scans dir (non-recursively) and returns the matched file triple.
func Discover(dir string, sfx Suffixes, policy string) (model.FileSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return model.FileSet{}, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var fs model.FileSet
	categories := []struct {
		label  string
		suffix string
		dst    *string
	}{
		{"metrics", sfx.Metrics, &fs.Metrics},
		{"avg-cost", sfx.AvgCost, &fs.AvgCost},
		{"min-cost", sfx.MinCost, &fs.MinCost},
	}

	matches := make([][]string, len(categories))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// First matching category only, so one file never fills two slots.
		for i, c := range categories {
			if strings.HasSuffix(name, c.suffix) {
				matches[i] = append(matches[i], name)
				break
			}
		}
	}

	var missing []string
	for i, c := range categories {
		names := matches[i]
		if len(names) == 0 {
			missing = append(missing, c.label)
			continue
		}
		if len(names) > 1 {
			if policy == PolicyError {
				return model.FileSet{}, &DuplicateError{Dir: dir, Suffix: c.suffix, Files: names}
			}
			output.Logger.Warn("Multiple files match suffix, using last", "dir", dir, "suffix", c.suffix, "files", names, "chosen", names[len(names)-1])
		}
		*c.dst = filepath.Join(dir, names[len(names)-1])
	}

	if len(missing) > 0 {
		return model.FileSet{}, &MissingError{Dir: dir, Missing: missing}
	}
	return fs, nil
}
