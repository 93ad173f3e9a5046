// Package logger builds charmbracelet/log loggers that write to stderr, so
// that stdout carries nothing but ladders and protocol frames.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Setup configures the global logger: debug enables the Debug level with
// timestamps, otherwise only warnings and errors are shown.
func Setup(debug bool) {
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		log.SetTimeFormat(time.Kitchen)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
}

// New creates a prefixed logger at the global level.
func New(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false, log.TextFormatter)
}

// NewWithConfig creates a logger with explicit settings.
func NewWithConfig(w io.Writer, prefix string, level log.Level, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
