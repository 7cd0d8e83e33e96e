package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "markline",
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to the file at path
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, level), cleanup, nil
}

// ParseLevel parses a level name, falling back to info.
func ParseLevel(name string) log.Level {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// SessionStarted logs the start of an editing session
func (l *Logger) SessionStarted(session, file string, lines int) {
	l.Info("session started",
		"session", session,
		"file", file,
		"lines", lines)
}

// SessionEnded logs the end of an editing session
func (l *Logger) SessionEnded(session string, duration time.Duration) {
	l.Info("session ended",
		"session", session,
		"duration", duration.Round(time.Millisecond))
}

// ContinuationApplied logs a marker carried onto a new line
func (l *Logger) ContinuationApplied(row int, kind string) {
	l.Debug("continuation applied",
		"row", row,
		"kind", kind)
}

// CommandRun logs a toolbar command
func (l *Logger) CommandRun(id string, applied bool) {
	l.Debug("command run",
		"command", id,
		"applied", applied)
}

// PreviewRendered logs a completed preview render
func (l *Logger) PreviewRendered(lines, bytes int, duration time.Duration) {
	l.Debug("preview rendered",
		"lines", lines,
		"bytes", bytes,
		"duration", duration.Round(time.Microsecond))
}

// RenderFailed logs a preview render error
func (l *Logger) RenderFailed(err error) {
	l.Error("preview failed",
		"error", err)
}

// ConfigLoaded logs the configuration in use
func (l *Logger) ConfigLoaded(path string, historyLimit int, sanitize bool) {
	l.Debug("config loaded",
		"path", path,
		"history_limit", historyLimit,
		"sanitize", sanitize)
}
