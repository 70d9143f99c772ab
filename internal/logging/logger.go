// Package logging builds the application loggers used by the msttrace
// adapters. The library packages (core, kruskal, graphtext) stay silent —
// they are pure computation — so logging lives entirely at the hosting
// boundary.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a configured text logger writing to stderr, keeping stdout
// free for the JSON trace output the CLI emits. The "error" attribute key is
// standardized to "err".
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}

			return a
		},
	}))
}

// NewNop returns a logger that discards everything; handy in tests.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps the CLI's --log-level flag value onto a slog.Level,
// defaulting to Info for anything unrecognized.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
