// Package logutils builds the zerolog logger shared by every command.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a new logger that writes JSON to the specified file.
// If file is empty, logs are written to stderr.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
// The file is opened for appending so logs survive across runs.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var writer io.Writer = os.Stderr
	if file != "" {
		logsDir := filepath.Dir(file)
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = osFile.Close() }
		writer = osFile
	}

	return NewWithWriter(writer, lvl), closer, nil
}

// NewWithWriter returns a timestamped JSON logger writing to w.
func NewWithWriter(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}
