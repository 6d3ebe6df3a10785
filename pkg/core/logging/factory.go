// ============================================================================
// Bologna - Kaleidoscope front end
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	bllog "github.com/msto63/bologna/foundation/core/log"
	"github.com/msto63/bologna/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "console" (default: text)
	Format string

	// Output writer (default: stderr, stdout carries parse results)
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig derives the logger configuration from the general section
func FromConfig(cfg *config.Config, name string) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg == nil {
		return lc
	}
	if cfg.General.LogLevel != "" {
		lc.Level = cfg.General.LogLevel
	}
	if cfg.General.LogFormat != "" {
		lc.Format = cfg.General.LogFormat
	}
	return lc
}

// NewLogger creates a new foundation logger. Unknown levels fall back to
// info and unknown formats to text.
func NewLogger(cfg LoggerConfig) *bllog.Logger {
	level, err := bllog.ParseLevel(cfg.Level)
	if err != nil {
		level = bllog.LevelInfo
	}

	format, err := bllog.ParseFormat(cfg.Format)
	if err != nil {
		format = bllog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return bllog.NewWithConfig(bllog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// Setup builds the logger for cfg, installs it as the process default and
// returns it
func Setup(cfg *config.Config, name string, verbose bool) *bllog.Logger {
	lc := FromConfig(cfg, name)
	if verbose {
		lc.Level = "debug"
	}
	logger := NewLogger(lc)
	bllog.SetDefault(logger)
	return logger
}
