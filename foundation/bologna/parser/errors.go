// File: errors.go
// Title: Parse Errors
// Description: The error value returned by every parse routine, with its
//              classification and source position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parse error type

package parser

import (
	"fmt"

	blerror "github.com/msto63/bologna/foundation/core/error"
)

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	// ErrSyntax: an expected token (closing parenthesis, identifier,
	// comma, ...) is missing
	ErrSyntax ErrorKind = iota

	// ErrLexical: the token itself is malformed, e.g. "1.2.3"
	ErrLexical

	// ErrUnexpectedPrimary: no expression can start with the token
	ErrUnexpectedPrimary
)

// String returns the string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax"
	case ErrLexical:
		return "lexical"
	case ErrUnexpectedPrimary:
		return "unexpected_primary"
	default:
		return "unknown"
	}
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Kind    ErrorKind
	Message string
	Pos     Position
	Token   Token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Pos.Line, pe.Pos.Column, pe.Message, pe.Token.display())
}

// Code maps the error kind to a structured error code
func (pe *ParseError) Code() blerror.Code {
	switch pe.Kind {
	case ErrLexical:
		return blerror.CodeLexical
	case ErrUnexpectedPrimary:
		return blerror.CodeUnexpectedToken
	default:
		return blerror.CodeSyntax
	}
}

// ToError converts the parse error into a structured error carrying the
// code, position and offending token as details
func (pe *ParseError) ToError() *blerror.Error {
	return blerror.New(pe.Message).
		WithCode(pe.Code()).
		WithOperation("parse").
		WithDetails(map[string]interface{}{
			"line":   pe.Pos.Line,
			"column": pe.Pos.Column,
			"near":   pe.Token.display(),
		})
}
