package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates a charm logger writing to w at the given level.
// An empty level means info.
func NewLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// OpenLogFile creates a logger for a Bubble Tea program. The terminal belongs
// to the program, so logs go to path, or nowhere when path is empty. The
// returned closer must be called on exit.
func OpenLogFile(path, level, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		logger, err := NewLogger(io.Discard, level, prefix)
		return logger, io.NopCloser(nil), err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	logger, err := NewLogger(f, level, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
