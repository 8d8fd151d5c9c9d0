// Package debug provides opt-in diagnostic logging for fixsql using log/slog
package debug

import (
	"io"
	"log/slog"
	"sync"
)

var (
	// logger discards everything until Init enables it
	logger = newLogger(io.Discard, false)
	// mu guards logger
	mu sync.RWMutex
)

func newLogger(w io.Writer, enable bool) *slog.Logger {
	level := slog.LevelError + 1
	if enable {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Init points debug output at w. With enable false every record is dropped.
func Init(w io.Writer, enable bool) {
	mu.Lock()
	defer mu.Unlock()

	logger = newLogger(w, enable)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
