// Package logging builds the leveled slog.Logger used for operational
// output on stderr. Chart files and summaries go to their own writers;
// nothing here touches stdout.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "debug", "info", "warn", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ErrLevel is returned by CheckLevel for an unknown level name.
var ErrLevel = errors.New("unknown log level")

// CheckLevel returns an error wrapping ErrLevel unless s is a level name
// ParseLevel understands.
func CheckLevel(s string) error {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("%w %q: want debug, info, warn or error", ErrLevel, s)
}

// NewLogger creates a leveled slog.Logger writing text records to w.
// The time attribute is dropped so that runs over the same input log
// identical lines.
func NewLogger(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

