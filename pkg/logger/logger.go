// Package logger builds the process-wide slog.Logger from logging settings.
// Text output goes through charmbracelet/log, JSON through slog's own handler.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Format names accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures New. The zero value logs text at info level to stderr.
type Options struct {
	Level   string
	Format  string
	Writer  io.Writer
	Version string
}

// New returns a logger for opts. Unknown levels fall back to info and
// unknown formats to text; config validation rejects both before this.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	debug := level == slog.LevelDebug

	var handler slog.Handler
	if strings.EqualFold(opts.Format, FormatJSON) {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level, AddSource: debug})
	} else {
		handler = log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
			ReportCaller:    debug,
			Level:           log.Level(level),
		})
	}

	l := slog.New(handler)
	if opts.Version != "" {
		l = l.With("version", opts.Version)
	}
	return l
}

// ParseLevel converts "debug", "info", "warn" or "error" (any case) to a
// slog.Level. An empty string is info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
