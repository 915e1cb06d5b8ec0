package logger

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger wraps charmbracelet/log with the constructors the command uses.
// Diagnostics go to stderr by default so stdout only carries search output.
type Logger struct {
	*clog.Logger
}

// New creates a new logger writing to stderr
func New() *Logger {
	return NewWriter(os.Stderr)
}

// NewWriter creates a new logger that writes to the provided writer
func NewWriter(w io.Writer) *Logger {
	return &Logger{
		Logger: clog.NewWithOptions(w, clog.Options{
			ReportTimestamp: true,
		}),
	}
}

// SetVerbose toggles debug output
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.SetLevel(clog.DebugLevel)
		return
	}
	l.SetLevel(clog.InfoLevel)
}
