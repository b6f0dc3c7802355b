// Package logging writes structured logs to a file. The terminal belongs to
// the TUI, so nothing here ever prints to stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// Logger is the global logger. It discards everything until Init runs.
	Logger = log.New(io.Discard)

	logFile *os.File
)

// Init opens path for appending and routes Logger to it. An empty path keeps
// logging disabled.
func Init(path, level string) error {
	if path == "" {
		return nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f

	Logger = New(f, lvl)
	Logger.Info("pullrefresh started")
	return nil
}

// New builds a logger with the package's formatting.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
	})
}

// Close flushes the shutdown line and closes the log file.
func Close() {
	Logger.Info("pullrefresh shutting down")
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	Logger = log.New(io.Discard)
}

func Info(msg string, keyvals ...interface{})  { Logger.Info(msg, keyvals...) }
func Debug(msg string, keyvals ...interface{}) { Logger.Debug(msg, keyvals...) }
func Warn(msg string, keyvals ...interface{})  { Logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { Logger.Error(msg, keyvals...) }

// WithPrefix returns a child logger tagged with prefix.
func WithPrefix(prefix string) *log.Logger {
	return Logger.WithPrefix(prefix)
}
