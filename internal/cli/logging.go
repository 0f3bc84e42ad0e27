package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// NewLogger returns a text logger writing to w. Verbose forces debug level.
//
// Every record carries a time-sortable UUIDv7 session id so the lines of one
// invocation can be grouped when several runs share a log file.
func NewLogger(w io.Writer, level slog.Level, verbose bool) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With("session", uuid.Must(uuid.NewV7()).String())
}

// parseLevel maps a config log_level to a slog.Level.
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
