// Package logging provides nil-safe component logger handles for the library.
// Operations return their failures to callers rather than logging them; the
// handles here carry debug traces and cleanup warnings only.
package logging

import (
	"github.com/sirupsen/logrus"
)

// Logger is a component-scoped logging handle. It has the novel property that
// it still functions if nil, but it doesn't log anything, which allows
// library consumers to opt out of logging entirely by passing a nil handle.
// It is safe for concurrent usage.
type Logger struct {
	// entry is the underlying logrus entry, carrying the component field.
	entry *logrus.Entry
}

// NewLogger creates a logger handle that forwards to the specified logrus
// logger, tagging every line with the specified component name. A nil base
// logger yields a nil (silent) handle.
func NewLogger(base *logrus.Logger, component string) *Logger {
	if base == nil {
		return nil
	}
	return &Logger{entry: base.WithField("component", component)}
}

// Sublogger creates a new handle with the specified name appended to the
// component field using a dot separator.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new component name.
	component := name
	if existing, ok := l.entry.Data["component"].(string); ok && existing != "" {
		component = existing + "." + name
	}

	// Create the new handle.
	return &Logger{entry: l.entry.WithField("component", component)}
}

// Warnf logs a non-fatal problem with semantics equivalent to fmt.Printf.
func (l *Logger) Warnf(format string, arguments ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Warnf(format, arguments...)
}

// Debugf logs execution information with semantics equivalent to fmt.Printf.
func (l *Logger) Debugf(format string, arguments ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Debugf(format, arguments...)
}

// Tracef logs low-level execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Tracef(format string, arguments ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Tracef(format, arguments...)
}
