// File: lexer.go
// Title: Bologna Lexical Analyzer
// Description: Pull-based tokenizer over an io.RuneReader. Classifies
//              keywords, identifiers, numbers and single-character
//              symbols, skips whitespace and comments and tracks source
//              positions for error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial lexer implementation

package parser

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// LexerOptions configures lexer behavior
type LexerOptions struct {
	// EmitWhitespace returns whitespace runs as TokenWhitespace instead
	// of skipping them
	EmitWhitespace bool
}

// Lexer turns a character stream into tokens. It holds one character of
// lookahead, read lazily on the first call to NextToken.
type Lexer struct {
	src  io.RuneReader
	opts LexerOptions

	ch     rune // Current character (lookahead)
	primed bool // ch has been read
	eof    bool // No more characters
	err    error

	offset int // Rune offset of ch (0-based)
	line   int // Line of ch (1-based)
	column int // Column of ch (1-based)
}

// NewLexer creates a lexer reading from src
func NewLexer(src io.RuneReader, opts LexerOptions) *Lexer {
	return &Lexer{
		src:    src,
		opts:   opts,
		line:   1,
		column: 1,
	}
}

// NewStringLexer creates a lexer for the given input
func NewStringLexer(input string, opts LexerOptions) *Lexer {
	return NewLexer(strings.NewReader(input), opts)
}

// Err returns the first read error other than io.EOF. A read error ends
// the token stream like end of input does.
func (l *Lexer) Err() error {
	return l.err
}

// NextToken returns the next token from the input. Once the input is
// exhausted it returns TokenEOF on every call without reading again.
func (l *Lexer) NextToken() Token {
	if !l.primed {
		l.readChar()
		l.primed = true
	}

	for {
		pos := l.position()

		if l.eof {
			return Token{Kind: TokenEOF, Pos: pos}
		}

		switch {
		case unicode.IsSpace(l.ch):
			text := l.readWhile(unicode.IsSpace)
			if l.opts.EmitWhitespace {
				return Token{Kind: TokenWhitespace, Text: text, Pos: pos}
			}

		case l.ch == '#':
			l.skipComment()

		case isNumberChar(l.ch):
			return l.readNumber(pos)

		case unicode.IsLetter(l.ch):
			text := l.readWhile(isIdentifierChar)
			return Token{Kind: lookupIdentifier(text), Text: text, Pos: pos}

		default:
			ch := l.ch
			l.readChar()
			return Token{Kind: TokenChar, Text: string(ch), Char: ch, Pos: pos}
		}
	}
}

// Tokenize returns all tokens of input up to and including TokenEOF
func Tokenize(input string, opts LexerOptions) []Token {
	l := NewStringLexer(input, opts)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

// readChar moves past the current character and reads the next one
func (l *Lexer) readChar() {
	if l.eof {
		return
	}

	if l.primed {
		l.advancePosition()
	}

	r, _, err := l.src.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.err = err
		}
		l.eof = true
		l.ch = 0
		return
	}
	l.ch = r
}

func (l *Lexer) advancePosition() {
	l.offset++
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

func (l *Lexer) position() Position {
	return Position{Offset: l.offset, Line: l.line, Column: l.column}
}

func (l *Lexer) readWhile(accept func(rune) bool) string {
	var sb strings.Builder
	for !l.eof && accept(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return sb.String()
}

// skipComment consumes '#' through the end of the line. The line break
// itself is left for the whitespace rule.
func (l *Lexer) skipComment() {
	for !l.eof && l.ch != '\n' && l.ch != '\r' {
		l.readChar()
	}
}

// readNumber consumes a maximal run of digits and dots. Text that does not
// form a valid number yields TokenIllegal.
func (l *Lexer) readNumber(pos Position) Token {
	text := l.readWhile(isNumberChar)

	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{Kind: TokenIllegal, Text: text, Pos: pos}
	}
	return Token{Kind: TokenNumber, Text: text, Value: value, Pos: pos}
}

func lookupIdentifier(text string) TokenKind {
	switch text {
	case "def":
		return TokenDef
	case "extern":
		return TokenExtern
	default:
		return TokenIdentifier
	}
}

func isNumberChar(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

func isIdentifierChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
