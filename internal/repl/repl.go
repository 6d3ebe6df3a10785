// File: repl.go
// Title: Line-Oriented Read-Eval-Print Loop
// Description: Streams a character source through the top-level driver,
//              printing a prompt before each construct and a report line
//              after it. Also parses whole files non-interactively.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Interactive loop and file parsing

package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	blast "github.com/msto63/bologna/foundation/bologna/ast"
	bldriver "github.com/msto63/bologna/foundation/bologna/driver"
	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	bllog "github.com/msto63/bologna/foundation/core/log"
)

// Config holds REPL configuration
type Config struct {
	// Banner is printed once before the first prompt; empty disables it
	Banner string

	// Prompt is printed before each top-level construct
	Prompt string

	// PrintAST writes the S-expression of every parsed construct to Out
	PrintAST bool

	// Parser options for the session
	Parser blparser.Options

	Logger *bllog.Logger

	In  io.Reader
	Out io.Writer // parse results
	Err io.Writer // banner, prompts and report messages
}

func (c *Config) setDefaults() {
	if c.In == nil {
		c.In = os.Stdin
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Err == nil {
		c.Err = os.Stderr
	}
	if c.Logger == nil {
		c.Logger = bllog.GetDefault()
	}
	if c.Parser.Logger == nil {
		c.Parser.Logger = c.Logger
	}
}

// Run starts the interactive loop and returns when the input ends
func Run(cfg Config) (bldriver.Summary, error) {
	cfg.setDefaults()

	if cfg.Banner != "" {
		fmt.Fprintln(cfg.Err, cfg.Banner)
	}

	p := blparser.New(bufio.NewReader(cfg.In), cfg.Parser)
	d := bldriver.New(p, bldriver.Options{
		Logger: cfg.Logger,
		Prompt: func() {
			fmt.Fprint(cfg.Err, cfg.Prompt)
		},
	})

	summary := d.Run(func(r bldriver.Report) {
		if r.Kind == bldriver.KindSeparator {
			return
		}
		fmt.Fprintln(cfg.Err, r.Message())
		if r.OK() && cfg.PrintAST {
			fmt.Fprintln(cfg.Out, blast.Format(r.Node))
		}
	})

	// finish the dangling prompt
	fmt.Fprintln(cfg.Err)

	return summary, d.Err()
}

// ParseStream parses a whole source without prompts. Every parsed
// construct is written to Out, every failure to Err as
// "name:line:column: message".
func ParseStream(name string, src io.Reader, cfg Config) (bldriver.Summary, error) {
	cfg.setDefaults()

	p := blparser.New(bufio.NewReader(src), cfg.Parser)
	d := bldriver.New(p, bldriver.Options{Logger: cfg.Logger.WithField("source", name)})

	summary := d.Run(func(r bldriver.Report) {
		switch {
		case r.Kind == bldriver.KindSeparator:
		case r.OK():
			fmt.Fprintln(cfg.Out, blast.Format(r.Node))
		default:
			fmt.Fprintf(cfg.Err, "%s:%s: %s\n", name, failurePosition(r), r.Message())
		}
	})

	return summary, d.Err()
}

// failurePosition is where the parser gave up, falling back to the start
// of the construct
func failurePosition(r bldriver.Report) blparser.Position {
	var perr *blparser.ParseError
	if errors.As(r.Err, &perr) {
		return perr.Pos
	}
	return r.Pos
}
