// Package logging builds the process logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Only warnings and errors are shown
// unless verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "todo",
		Level:  log.WarnLevel,
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}
