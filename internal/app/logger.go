package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vnest-fi/vnest-backend/internal/config"
)

// NewLogger builds the process-wide *slog.Logger from LogConfig and
// installs it as the slog default, so library code logging through
// slog.Default ends up in the same stream.
//
// Format "json" is the production default; "text" adds source locations
// for local development. Output goes to os.Stderr, keeping stdout free
// for tool output (cmd/import).
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	textFormat := strings.EqualFold(cfg.Format, "text")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: textFormat,
	}

	if textFormat {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// parseLevel maps a config string to a slog level, defaulting to info for
// anything unrecognized rather than failing startup over a typo.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
