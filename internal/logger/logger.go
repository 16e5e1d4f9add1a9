package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// Config selects where and how log records are written.
type Config struct {
	Level  string // debug, info, warn, error
	File   string // "" writes to stderr
	Format string // "json" or text
}

// Init installs the global slog logger and returns a func that closes the
// log file, if one was opened.
// The TUI owns the terminal, so callers normally pass a File.
func Init(cfg Config) func() {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	toFile := false

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
			slog.Error("failed to create log directory, using stderr", "file", cfg.File, "error", err)
		} else {
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err != nil {
				slog.Error("failed to open log file, using stderr", "file", cfg.File, "error", err)
			} else {
				w = f
				toFile = true
				closeFn = func() { f.Close() } //nolint:errcheck
			}
		}
	}

	slog.SetDefault(slog.New(newHandler(w, cfg, toFile)))
	return closeFn
}

func newHandler(w io.Writer, cfg Config, noColor bool) slog.Handler {
	level := ParseLevel(cfg.Level)
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	})
}

// ParseLevel maps a LOG_LEVEL string to a slog level. Unknown values are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// NewRequestID returns a time-ordered ID for correlating a request with its logs.
func NewRequestID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewRequestLogger returns base with a requestId attribute.
func NewRequestLogger(base *slog.Logger, requestID string) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	return base.With("requestId", requestID)
}
