// Package logging builds the diagnostic logger shared by the registry client,
// the package manager installer, and the add flow. User-facing progress lines
// go through package ui; this logger is for --verbose troubleshooting.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
)

// New returns a logger writing to w. Debug output is enabled when verbose is set;
// otherwise only warnings and errors are emitted.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: branding.CLIName(),
	})
}

// Discard returns a logger that drops everything. Used as the zero value by
// packages whose callers did not supply a logger.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
