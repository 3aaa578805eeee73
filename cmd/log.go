package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger writes leveled, timestamped lines to w. It doubles as the
// slog handler for library code.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "selectme",
	})
}
