// Package logging sets up gantry's structured log file.
//
// The TUI owns the terminal, so nothing may write to stderr while it runs.
// All diagnostics go to a JSON log file instead, which the UI log view
// reads back via the logtail package.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New opens the log file at path and returns a logger writing to it.
// Parent directories are created as needed. The returned closer must be
// closed when the application exits.
func New(path string) (zerolog.Logger, io.Closer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(file).With().Timestamp().Logger()
	return logger, file, nil
}
