// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick a log level for an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers bad user input such as malformed source text
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh covers broken configuration and I/O failures
	SeverityHigh

	// SeverityCritical means the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity that goes with a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeLexical, CodeSyntax, CodeUnexpectedToken, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	case CodeConfigError, CodeInvalidConfig, CodeSourceRead:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
