// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/quire/internal/core/ports"
)

// messager describes an error that can report its own message without the chain,
// like zerr.Error and domain.FileError.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance writing pretty output to standard error.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination, keeping the current mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug messages.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// rebuild must be called with mu held.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: &l.level}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// Debug logs a diagnostic message, shown only in verbose mode.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks the chain of errors that report their own message.
// The first error that does not stops the walk with its full text.
func collectErrorEntries(err error) []string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}
	return messages
}

// formatErrorEntries renders the main error followed by an indented list of causes.
func formatErrorEntries(messages []string) string {
	var formattedLines []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formattedLines = append(formattedLines, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "       "+line)
			}
			continue
		}

		if i == 1 {
			formattedLines = append(formattedLines, "", "  Caused by:")
		}
		formattedLines = append(formattedLines, "    → "+lines[0])
		for _, line := range lines[1:] {
			formattedLines = append(formattedLines, "      "+line)
		}
	}

	return strings.Join(formattedLines, "\n")
}
