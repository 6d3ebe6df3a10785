// Package log provides structured logging for the Bologna tools.
//
// Package: log
// Title: Bologna Structured Logging
// Description: Leveled logger with persistent context fields, JSON, text
//              and colored console output, error-aware logging and timers
//              for measuring parse and request durations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Logger trimmed to the needs of the CLI, TUI and server
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "bologna",
//	})
//
//	logger.WithField("session", id).Info("construct parsed", log.Fields{
//		"kind": "definition",
//	})
package log
