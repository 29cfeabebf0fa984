// Package logx configures the process-wide slog logger.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// LevelFromFlags maps --verbose and --quiet to a level. Verbose wins.
func LevelFromFlags(verbose, quiet bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New returns a text logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs the default logger. When path is empty logs go to stderr;
// the returned close func must be called before exit.
func Setup(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		l := New(os.Stderr, level)
		slog.SetDefault(l)
		return l, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	l := New(f, level)
	slog.SetDefault(l)
	return l, f.Close, nil
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger { return New(io.Discard, slog.LevelError+1) }
