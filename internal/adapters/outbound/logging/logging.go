// Package logging builds the process logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// VersionKey tags every entry with the tool version.
const VersionKey = "version"

// New returns a text logger writing to w. Verbose enables debug output;
// otherwise only warnings and errors are logged.
func New(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !verbose,
		FullTimestamp:    verbose,
	})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}

// WithVersion returns an entry carrying the tool version.
func WithVersion(l *logrus.Logger, version string) *logrus.Entry {
	return l.WithField(VersionKey, version)
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
