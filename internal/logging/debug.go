// Package logging provides the leveled logger shared by the tasklist packages.
// Output goes to stderr so it never interleaves with the interactive dialogue.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

var std = New(Options{})

// DebugEnabled returns true if debug mode is enabled via TASKLIST_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TASKLIST_DEBUG") != ""
}

// New creates a logger from string options. TASKLIST_DEBUG forces debug level.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := ParseLevel(opts.Level)
	if DebugEnabled() {
		level = log.DebugLevel
	}
	return log.NewWithOptions(out, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: false,
		Prefix:          "tasklist",
	})
}

// ParseLevel parses a level name. Unknown names fall back to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a formatter name (text, json, logfmt).
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// SetDefault replaces the package logger.
func SetDefault(logger *log.Logger) {
	if logger != nil {
		std = logger
	}
}

// Default returns the package logger.
func Default() *log.Logger {
	return std
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

// Debugln logs a debug message built from its operands
func Debugln(args ...interface{}) {
	std.Debug(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}
