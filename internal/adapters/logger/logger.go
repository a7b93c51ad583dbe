// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/dynver/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	out    io.Writer
	level  slog.Level
	logger *slog.Logger
}

// New creates a new Logger writing human-readable text to stderr at info level.
func New() *Logger {
	l := &Logger{
		out:   os.Stderr,
		level: slog.LevelInfo,
	}
	l.rebuild()
	return l
}

// rebuild must be called with mu held for writing, or before l is shared.
func (l *Logger) rebuild() {
	handler := slog.NewTextHandler(l.out, &slog.HandlerOptions{
		Level: l.level,
	})
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.rebuild()
}

// SetVerbose switches between debug and info level.
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = slog.LevelInfo
	if verbose {
		l.level = slog.LevelDebug
	}
	l.rebuild()
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error. zerr metadata is rendered as structured attributes.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}

var _ ports.Logger = (*Logger)(nil)
