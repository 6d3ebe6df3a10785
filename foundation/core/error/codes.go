// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the Bologna front end.
//              Codes classify lexer and parser failures as well as
//              configuration and service problems.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Front end
	CodeLexical         Code = "LEXICAL"
	CodeSyntax          Code = "SYNTAX"
	CodeUnexpectedToken Code = "UNEXPECTED_TOKEN"
	CodeSourceRead      Code = "SOURCE_READ"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax, CodeUnexpectedToken, CodeSourceRead,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeUnexpectedToken, CodeSourceRead:
		return "parse"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsRecoverable reports whether the driver can skip past an error with
// this code and keep parsing.
func (c Code) IsRecoverable() bool {
	switch c {
	case CodeLexical, CodeSyntax, CodeUnexpectedToken:
		return true
	default:
		return false
	}
}
