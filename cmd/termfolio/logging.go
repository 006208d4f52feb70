package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger logs to w with the CLI's prefix and level.
func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "termfolio",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fileLogger logs to ~/.termfolio/termfolio.log for modes that own the
// terminal. If the file cannot be opened, logs are dropped.
func fileLogger(debug bool) (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, debug), func() {}
	}
	dir := filepath.Join(home, ".termfolio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, debug), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "termfolio.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newLogger(io.Discard, debug), func() {}
	}
	return newLogger(f, debug), func() { _ = f.Close() }
}
