// Package logging builds the slog logger shared by the TUI and the CLI.
//
// The TUI owns the terminal, so records are written to a file and never to
// stdout or stderr while it runs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Path   string    // log file; created with parent directories
	Writer io.Writer // used instead of Path when set
}

// New constructs a text slog logger. The returned closer releases the log
// file and is safe to call when no file was opened.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level := new(slog.LevelVar)
	level.Set(parseLevel(opts.Level))
	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level.Level() <= slog.LevelDebug,
	}

	if opts.Writer != nil {
		return slog.New(slog.NewTextHandler(opts.Writer, handlerOpts)), nopCloser{}, nil
	}

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return Discard(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(file, handlerOpts)), file, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Component scopes a logger to one part of the application.
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = Discard()
	}
	return logger.With("component", name)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
