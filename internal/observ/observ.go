// Package observ is a thin logrus wrapper giving the CLI and the
// random-mode generator a consistent set of structured fields (seed,
// candidate, attempt, classification) instead of scattering
// logrus.Fields literals across callers — grounded on the logrus usage
// throughout operator-framework-operator-lifecycle-manager's cmd/ and
// pkg/controller packages.
package observ

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Logger with domain-specific field helpers.
type Logger struct {
	entry *logrus.Logger
}

// New returns a Logger writing to stderr at info level, built on a
// fresh logrus.New() rather than the package-level default logger.
func New() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	return &Logger{entry: l}
}

// Attempt logs one random-mode candidate draw.
func (l *Logger) Attempt(seed int64, attempt int, candidate string) {
	l.entry.WithFields(logrus.Fields{
		"seed":      seed,
		"attempt":   attempt,
		"candidate": candidate,
	}).Debug("drew candidate number")
}

// Classified logs the primality classification assigned to a candidate.
func (l *Logger) Classified(candidate string, classification string) {
	l.entry.WithFields(logrus.Fields{
		"candidate":      candidate,
		"classification": classification,
	}).Debug("classified candidate")
}

// GaveUp logs that random-mode generation exhausted its try budget.
func (l *Logger) GaveUp(seed int64, tries int) {
	l.entry.WithFields(logrus.Fields{
		"seed":  seed,
		"tries": tries,
	}).Warn("exhausted max tries without a matching candidate")
}

// Info logs an informational message with no extra fields.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}
