package shared

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a console logger at the given level
func SetupLogger(level log.Level, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "pokerhand",
		ReportTimestamp: level <= log.DebugLevel,
		TimeFormat:      time.TimeOnly,
	})
}

// ParseLevel resolves the effective level. debug wins over an explicit level,
// which wins over fallback.
func ParseLevel(explicit string, debug bool, fallback log.Level) (log.Level, error) {
	if debug {
		return log.DebugLevel, nil
	}
	if explicit == "" {
		return fallback, nil
	}
	return log.ParseLevel(explicit)
}
