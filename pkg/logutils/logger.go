package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level.
//
// When file is set, JSON lines are appended to it. Otherwise a human-readable
// console writer on stderr is used, leaving stdout to the terminal UI.
//
// The level parameter can be one of: trace, debug, info, warn, error, fatal, disabled.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level: %w", err)
	}

	var writer io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
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

// NewWithWriter returns a timestamped logger writing to w.
func NewWithWriter(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}
