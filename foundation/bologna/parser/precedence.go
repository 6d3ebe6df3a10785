// File: precedence.go
// Title: Binary Operator Precedence Table
// Description: Immutable mapping from operator character to binding
//              strength used by the expression parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Default table and validated custom tables

package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	blerror "github.com/msto63/bologna/foundation/core/error"
)

// PrecedenceTable maps binary operators to binding strengths. Higher
// values bind tighter. A table is not modified after construction.
type PrecedenceTable struct {
	strengths map[rune]int
}

// DefaultPrecedence returns the standard table: < 10, + 20, - 20, * 40
func DefaultPrecedence() *PrecedenceTable {
	return &PrecedenceTable{
		strengths: map[rune]int{
			'<': 10,
			'+': 20,
			'-': 20,
			'*': 40,
		},
	}
}

// NewPrecedenceTable validates and copies strengths. Strengths must be
// positive and operators must not be characters the grammar already uses:
// parentheses, comma, semicolon, '#', letters, digits, '.' or whitespace.
func NewPrecedenceTable(strengths map[rune]int) (*PrecedenceTable, error) {
	table := &PrecedenceTable{strengths: make(map[rune]int, len(strengths))}

	for op, strength := range strengths {
		if isReservedOperator(op) {
			return nil, blerror.Newf("character %q cannot be used as a binary operator", op).
				WithCode(blerror.CodeInvalidConfig).
				WithDetail("operator", string(op))
		}
		if strength <= 0 {
			return nil, blerror.Newf("precedence of %q must be positive, got %d", op, strength).
				WithCode(blerror.CodeInvalidConfig).
				WithDetail("operator", string(op))
		}
		table.strengths[op] = strength
	}

	return table, nil
}

// ParsePrecedenceTable builds a table from configuration keys, each of
// which must be exactly one character
func ParsePrecedenceTable(strengths map[string]int) (*PrecedenceTable, error) {
	runes := make(map[rune]int, len(strengths))
	for key, strength := range strengths {
		if utf8.RuneCountInString(key) != 1 {
			return nil, blerror.Newf("operator %q must be a single character", key).
				WithCode(blerror.CodeInvalidConfig).
				WithDetail("operator", key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		runes[r] = strength
	}
	return NewPrecedenceTable(runes)
}

// Lookup returns the strength of op and whether op is a binary operator
func (t *PrecedenceTable) Lookup(op rune) (int, bool) {
	strength, ok := t.strengths[op]
	return strength, ok && strength > 0
}

// Operators returns the operators in ascending order
func (t *PrecedenceTable) Operators() []rune {
	ops := make([]rune, 0, len(t.strengths))
	for op := range t.strengths {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// String lists the table as "op=strength" pairs
func (t *PrecedenceTable) String() string {
	parts := make([]string, 0, len(t.strengths))
	for _, op := range t.Operators() {
		parts = append(parts, fmt.Sprintf("%c=%d", op, t.strengths[op]))
	}
	return strings.Join(parts, " ")
}

func isReservedOperator(r rune) bool {
	switch r {
	case '(', ')', ',', ';', '#', '.':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r)
}
