// ============================================================================
// Bologna - Kaleidoscope front end
// ============================================================================
//
// Package:     console
// Description: History entries and message types of the console
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package console

import bldriver "github.com/msto63/bologna/foundation/bologna/driver"

// Mode selects what happens to a submitted line
type Mode int

const (
	// ModeParse runs the line through the top-level driver
	ModeParse Mode = iota

	// ModeTokens lists the tokens of the line
	ModeTokens
)

// String returns the label shown in the header
func (m Mode) String() string {
	if m == ModeTokens {
		return "tokens"
	}
	return "parse"
}

// Line is one rendered output line of an entry
type Line struct {
	Text  string
	OK    bool
	IsAST bool // S-expression or token line, rendered indented
}

// Entry is one submitted input with its output
type Entry struct {
	Input string
	Mode  Mode
	Lines []Line

	// Summary counts the constructs of a parse; zero in token mode
	Summary bldriver.Summary
}

// evaluatedMsg carries the result of a submitted line
type evaluatedMsg struct {
	entry Entry
}
