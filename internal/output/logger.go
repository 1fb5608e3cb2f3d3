/*
PURPOSE:
  Provides a structured logger for runplot.
  Wraps slog for consistent diagnostic output.

REQUIREMENTS:
  User-specified:
  - Errors must be reported on the diagnostic channel, never swallowed.

  Implementation-discovered:
  - Needs a configurable level (--log-level / log_level).
  - Diagnostics go to stderr so stdout stays clean for the summary report.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - Init returns an error for unknown level names.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Info("message", "key", "value")

RELATED FILES:
  - internal/cli/root.go (calls Init with the configured level)
*/

package output

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		lvl = slog.LevelInfo
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return lvl, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", name)
	}
	return lvl, nil
}

// Init replaces Logger with a text logger writing to w at the named level.
func Init(level string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}
