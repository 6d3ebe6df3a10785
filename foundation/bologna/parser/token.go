// File: token.go
// Title: Bologna Token Definitions
// Description: Token kinds and the Token value produced by the lexer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial token definitions

package parser

import (
	"fmt"

	blast "github.com/msto63/bologna/foundation/bologna/ast"
)

// Position is the source position of a token
type Position = blast.Position

// TokenKind represents the kind of a lexical token
type TokenKind int

const (
	// Special tokens
	TokenEOF TokenKind = iota
	TokenIllegal // malformed numeric literal

	// Keywords
	TokenDef    // def
	TokenExtern // extern

	// Identifiers and literals
	TokenIdentifier // foo, x1
	TokenNumber     // 12, 4.5

	// Any other single character: operators and punctuation
	TokenChar

	// Whitespace runs, only produced when LexerOptions.EmitWhitespace is set
	TokenWhitespace
)

// String returns the upper-case name of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenDef:
		return "DEF"
	case TokenExtern:
		return "EXTERN"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenChar:
		return "CHAR"
	case TokenWhitespace:
		return "WHITESPACE"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Kind  TokenKind
	Text  string  // Source text of the token
	Value float64 // Decoded value for TokenNumber
	Char  rune    // The character for TokenChar
	Pos   Position
}

// String returns a compact representation such as NUMBER(12) or CHAR(+)
func (t Token) String() string {
	switch t.Kind {
	case TokenEOF, TokenDef, TokenExtern:
		return t.Kind.String()
	case TokenNumber:
		return fmt.Sprintf("NUMBER(%s)", blast.FormatNumber(t.Value))
	case TokenChar:
		return fmt.Sprintf("CHAR(%c)", t.Char)
	case TokenWhitespace:
		return fmt.Sprintf("WHITESPACE(%q)", t.Text)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
}

// Is reports whether the token is the single character r
func (t Token) Is(r rune) bool {
	return t.Kind == TokenChar && t.Char == r
}

// display is the text shown in error messages
func (t Token) display() string {
	if t.Kind == TokenEOF {
		return "end of input"
	}
	return t.Text
}
