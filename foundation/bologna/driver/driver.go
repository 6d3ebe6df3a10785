// File: driver.go
// Title: Bologna Top-Level Driver
// Description: Repeatedly parses one top-level construct from a parser
//              session and reports the outcome. After a failure the
//              driver skips exactly one token and continues.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial driver implementation

package driver

import (
	"errors"

	blast "github.com/msto63/bologna/foundation/bologna/ast"
	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	bllog "github.com/msto63/bologna/foundation/core/log"
)

// Kind is the top-level form the driver dispatched on
type Kind int

const (
	KindDefinition Kind = iota
	KindExtern
	KindExpression
	KindSeparator
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindDefinition:
		return "definition"
	case KindExtern:
		return "extern"
	case KindExpression:
		return "expression"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Report describes one iteration of the driver loop
type Report struct {
	Kind Kind
	Node blast.Node // nil for separators and failures
	Err  error
	Pos  blparser.Position
}

// OK reports whether the construct parsed
func (r Report) OK() bool {
	return r.Err == nil
}

// Message returns the line printed for the report
func (r Report) Message() string {
	if r.Err != nil {
		var perr *blparser.ParseError
		if errors.As(r.Err, &perr) {
			return "Error: " + perr.Message
		}
		return "Error: " + r.Err.Error()
	}

	switch r.Kind {
	case KindDefinition:
		return "Parsed a function definition."
	case KindExtern:
		return "Parsed an extern"
	case KindExpression:
		return "Parsed a top-level expr"
	default:
		return "Skipped separator"
	}
}

// Summary counts reports by outcome
type Summary struct {
	Definitions int
	Externs     int
	Expressions int
	Separators  int
	Failures    int
}

// Parsed returns the number of constructs that parsed
func (s Summary) Parsed() int {
	return s.Definitions + s.Externs + s.Expressions
}

func (s *Summary) add(r Report) {
	if !r.OK() {
		s.Failures++
		return
	}
	switch r.Kind {
	case KindDefinition:
		s.Definitions++
	case KindExtern:
		s.Externs++
	case KindExpression:
		s.Expressions++
	case KindSeparator:
		s.Separators++
	}
}

// Options configures the driver
type Options struct {
	Logger *bllog.Logger

	// Separator is skipped between constructs, ';' by default
	Separator rune

	// Prompt is called before each top-level construct is read
	Prompt func()
}

// Driver runs the top-level loop over one parser session
type Driver struct {
	parser  *blparser.Parser
	logger  *bllog.Logger
	options Options
	summary Summary
	done    bool
}

// New creates a driver for the given parser
func New(p *blparser.Parser, opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = bllog.GetDefault()
	}
	if opts.Separator == 0 {
		opts.Separator = ';'
	}

	return &Driver{
		parser:  p,
		logger:  opts.Logger.WithField("component", "driver"),
		options: opts,
	}
}

// Next parses one top-level construct. It returns false once the input is
// exhausted; every later call also returns false.
func (d *Driver) Next() (Report, bool) {
	if d.done {
		return Report{}, false
	}

	if d.options.Prompt != nil {
		d.options.Prompt()
	}

	tok := d.parser.Current()
	report := Report{Pos: tok.Pos}

	switch {
	case tok.Kind == blparser.TokenEOF:
		d.done = true
		if err := d.parser.Err(); err != nil {
			d.logger.ErrorWithErr("input ended with a read error", err)
		}
		return Report{}, false

	case tok.Is(d.options.Separator):
		d.parser.Advance()
		report.Kind = KindSeparator

	case tok.Kind == blparser.TokenDef:
		report.Kind = KindDefinition
		fn, err := d.parser.ParseDefinition()
		if err != nil {
			report.Err = err
		} else {
			report.Node = fn
		}

	case tok.Kind == blparser.TokenExtern:
		report.Kind = KindExtern
		proto, err := d.parser.ParseExtern()
		if err != nil {
			report.Err = err
		} else {
			report.Node = proto
		}

	default:
		report.Kind = KindExpression
		fn, err := d.parser.ParseTopLevelExpr()
		if err != nil {
			report.Err = err
		} else {
			report.Node = fn
		}
	}

	if report.Err != nil {
		d.logFailure(report)
		// skip one token for error recovery
		d.parser.Advance()
	} else if report.Kind != KindSeparator {
		d.logger.Debug(report.Message(), bllog.Fields{
			"kind": report.Kind.String(),
			"pos":  report.Pos.String(),
		})
	}

	d.summary.add(report)
	return report, true
}

// Run drives the loop to the end of input, passing every report to handle
func (d *Driver) Run(handle func(Report)) Summary {
	timer := d.logger.StartTimer("parse session")
	for {
		report, ok := d.Next()
		if !ok {
			break
		}
		if handle != nil {
			handle(report)
		}
	}

	timer.WithField("parsed", d.summary.Parsed()).
		WithField("failures", d.summary.Failures).
		Stop()
	return d.summary
}

// Summary returns the counts so far
func (d *Driver) Summary() Summary {
	return d.summary
}

// Err returns the read error that ended the input, if any
func (d *Driver) Err() error {
	return d.parser.Err()
}

// ParseAll parses every construct of input in a fresh session
func ParseAll(input string, opts blparser.Options) ([]Report, Summary) {
	d := New(blparser.NewString(input, opts), Options{Logger: opts.Logger})

	var reports []Report
	summary := d.Run(func(r Report) {
		reports = append(reports, r)
	})
	return reports, summary
}

func (d *Driver) logFailure(report Report) {
	var perr *blparser.ParseError
	if errors.As(report.Err, &perr) {
		d.logger.LogError(perr.ToError(), bllog.Fields{"kind": report.Kind.String()})
		return
	}
	d.logger.WarnWithErr("parse failed", report.Err, bllog.Fields{"kind": report.Kind.String()})
}
