// File: lex.go
// Title: Token Dump Loop
// Description: Reads input line by line and prints every token of each
//              line as "KIND: 'text' value".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial token dump
// - 2026-10-17 v0.1.1: Read lines without a length limit

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	blast "github.com/msto63/bologna/foundation/bologna/ast"
	blparser "github.com/msto63/bologna/foundation/bologna/parser"
)

// Lex prints the tokens of every input line. The prompt, if any, goes to
// cfg.Err before each line; tokens go to cfg.Out.
func Lex(cfg Config, opts blparser.LexerOptions) error {
	cfg.setDefaults()

	if cfg.Banner != "" {
		fmt.Fprintln(cfg.Err, cfg.Banner)
	}

	reader := bufio.NewReader(cfg.In)
	for {
		fmt.Fprint(cfg.Err, cfg.Prompt)
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			fmt.Fprintln(cfg.Err)
			if err == io.EOF {
				return nil
			}
			return err
		}
		for _, tok := range blparser.Tokenize(strings.TrimRight(line, "\r\n"), opts) {
			if tok.Kind == blparser.TokenEOF {
				break
			}
			fmt.Fprintln(cfg.Out, DescribeToken(tok))
		}
	}
}

// DescribeToken renders a token as KIND: 'text', followed by the value
// for numbers
func DescribeToken(tok blparser.Token) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: '%s'", tok.Kind, tok.Text)
	if tok.Kind == blparser.TokenNumber {
		sb.WriteString(" ")
		sb.WriteString(blast.FormatNumber(tok.Value))
	}
	return sb.String()
}
