// ============================================================================
// Bologna - Kaleidoscope front end
// ============================================================================
//
// Package:     logging
// Description: Key-value logger used by the services and the CLI
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	bllog "github.com/msto63/bologna/foundation/core/log"
)

// Logger wraps the foundation logger with key-value logging methods
type Logger struct {
	*bllog.Logger
	name string
}

// New creates a key-value logger with the default configuration
func New(name string) *Logger {
	return &Logger{
		Logger: NewLogger(DefaultLoggerConfig(name)),
		name:   name,
	}
}

// Wrap adapts an existing foundation logger
func Wrap(logger *bllog.Logger, name string) *Logger {
	return &Logger{
		Logger: logger.WithName(name),
		name:   name,
	}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// With returns a logger that adds the key-value pairs to every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.WithFields(toFields(keysAndValues...)),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to bllog.Fields. Non-string keys and
// a trailing key without value are dropped.
func toFields(keysAndValues ...interface{}) bllog.Fields {
	fields := make(bllog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
