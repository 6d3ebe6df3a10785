// File: doc.go
// Title: Bologna Parser Package Documentation
// Description: Package documentation for the Bologna lexer and parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

/*
Package parser turns Bologna source text into AST nodes.

The grammar:

	top        ::= definition | external | expression | ';'
	definition ::= 'def' prototype expression
	external   ::= 'extern' prototype
	prototype  ::= identifier '(' identifier* ')'
	expression ::= primary (binop primary)*
	primary    ::= number | identifier | identifier '(' args? ')' | '(' expression ')'

Binary operators and their strengths come from a PrecedenceTable; the
default table is < 10, + 20, - 20, * 40. Equal strengths associate to the
left.

Lexing is pull based: the parser asks the Lexer for one token at a time
and keeps exactly one token of lookahead. Comments run from '#' to the end
of the line.

Basic usage:

	p := parser.NewString("def f(x y) x + y * 2", parser.Options{})
	fn, err := p.ParseDefinition()
	if err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			fmt.Println(perr.Pos, perr.Message)
		}
	}
	fmt.Println(fn) // (def (proto f x y) (+ x (* y 2)))

Every parse routine either succeeds and leaves the lookahead on the first
token after the construct, or returns a *ParseError and no node. A Parser
is one session and must not be shared between goroutines.
*/
package parser
