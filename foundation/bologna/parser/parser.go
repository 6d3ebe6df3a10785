// File: parser.go
// Title: Bologna Recursive Descent Parser
// Description: Builds AST nodes from the token stream using recursive
//              descent for statements and precedence climbing for binary
//              expressions. One parser is one parsing session: it owns
//              the lexer and a single token of lookahead.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"io"
	"strings"

	blast "github.com/msto63/bologna/foundation/bologna/ast"
	bllog "github.com/msto63/bologna/foundation/core/log"
)

// DefaultAnonymousName names the function wrapping a top-level expression
const DefaultAnonymousName = "__anon_expr"

// Parser implements recursive descent parsing for Bologna. A Parser is
// not safe for concurrent use; independent parsers are.
type Parser struct {
	lexer      *Lexer
	current    Token // Lookahead token
	primed     bool  // current has been read
	logger     *bllog.Logger
	precedence *PrecedenceTable
	options    Options
}

// Options configures parser behavior
type Options struct {
	Logger        *bllog.Logger
	Precedence    *PrecedenceTable
	AnonymousName string
	Lexer         LexerOptions
}

// New creates a parser reading from src with the given options
func New(src io.RuneReader, opts Options) *Parser {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = bllog.GetDefault()
	}
	if opts.Precedence == nil {
		opts.Precedence = DefaultPrecedence()
	}
	if opts.AnonymousName == "" {
		opts.AnonymousName = DefaultAnonymousName
	}

	return &Parser{
		lexer:      NewLexer(src, opts.Lexer),
		logger:     opts.Logger.WithField("component", "parser"),
		precedence: opts.Precedence,
		options:    opts,
	}
}

// NewString creates a parser for the given input
func NewString(input string, opts Options) *Parser {
	return New(strings.NewReader(input), opts)
}

// Current returns the lookahead token, reading it first if necessary
func (p *Parser) Current() Token {
	p.prime()
	return p.current
}

// Advance consumes the lookahead token and returns the new one
func (p *Parser) Advance() Token {
	p.prime()
	p.advance()
	return p.current
}

// Err returns the read error that ended the input, if any
func (p *Parser) Err() error {
	return p.lexer.Err()
}

// ParseExpression parses a primary followed by any binary operators
//
//	expression ::= primary binoprhs
func (p *Parser) ParseExpression() (blast.Expr, error) {
	p.prime()

	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

// ParsePrototype parses a function signature
//
//	prototype ::= identifier '(' identifier* ')'
func (p *Parser) ParsePrototype() (*blast.Prototype, error) {
	p.prime()
	pos := p.current.Pos

	if p.current.Kind != TokenIdentifier {
		return nil, p.parseError(ErrSyntax, "expected function name in prototype")
	}
	name := p.current.Text
	p.advance()

	if !p.current.Is('(') {
		return nil, p.parseError(ErrSyntax, "expected '(' in prototype")
	}
	p.advance() // consume '('

	params := []string{}
	for p.current.Kind == TokenIdentifier {
		params = append(params, p.current.Text)
		p.advance()
	}

	if !p.current.Is(')') {
		return nil, p.parseError(ErrSyntax, "expected ')' in prototype")
	}
	p.advance() // consume ')'

	return &blast.Prototype{Name: name, Params: params, Pos: pos}, nil
}

// ParseDefinition parses a function definition
//
//	definition ::= 'def' prototype expression
func (p *Parser) ParseDefinition() (*blast.Function, error) {
	p.prime()
	pos := p.current.Pos

	if p.current.Kind != TokenDef {
		return nil, p.parseError(ErrSyntax, "expected 'def'")
	}
	p.advance() // consume 'def'

	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsed definition", bllog.Fields{
		"name":   proto.Name,
		"params": len(proto.Params),
		"pos":    pos.String(),
	})

	return &blast.Function{Proto: proto, Body: body, Pos: pos}, nil
}

// ParseExtern parses an external declaration
//
//	external ::= 'extern' prototype
func (p *Parser) ParseExtern() (*blast.Prototype, error) {
	p.prime()
	pos := p.current.Pos

	if p.current.Kind != TokenExtern {
		return nil, p.parseError(ErrSyntax, "expected 'extern'")
	}
	p.advance() // consume 'extern'

	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}
	proto.Pos = pos

	p.logger.Debug("parsed extern", bllog.Fields{
		"name": proto.Name,
		"pos":  pos.String(),
	})

	return proto, nil
}

// ParseTopLevelExpr parses an expression and wraps it in a function with
// the anonymous name and no parameters
//
//	toplevelexpr ::= expression
func (p *Parser) ParseTopLevelExpr() (*blast.Function, error) {
	p.prime()
	pos := p.current.Pos

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsed top-level expression", bllog.Fields{
		"pos": pos.String(),
	})

	return &blast.Function{
		Proto: &blast.Prototype{Name: p.options.AnonymousName, Params: []string{}, Pos: pos},
		Body:  body,
		Pos:   pos,
	}, nil
}

// parsePrimary dispatches on the lookahead token
//
//	primary ::= identifierexpr | numberexpr | parenexpr
func (p *Parser) parsePrimary() (blast.Expr, error) {
	switch {
	case p.current.Kind == TokenNumber:
		return p.parseNumberExpr(), nil
	case p.current.Kind == TokenIdentifier:
		return p.parseIdentifierExpr()
	case p.current.Is('('):
		return p.parseParenExpr()
	case p.current.Kind == TokenIllegal:
		return nil, p.parseError(ErrLexical, fmt.Sprintf("invalid number literal %q", p.current.Text))
	default:
		return nil, p.parseError(ErrUnexpectedPrimary, "expected expression")
	}
}

// numberexpr ::= number
func (p *Parser) parseNumberExpr() blast.Expr {
	expr := &blast.NumberExpr{Value: p.current.Value, Pos: p.current.Pos}
	p.advance()
	return expr
}

// parenexpr ::= '(' expression ')'
func (p *Parser) parseParenExpr() (blast.Expr, error) {
	p.advance() // consume '('

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if !p.current.Is(')') {
		return nil, p.parseError(ErrSyntax, "expected ')'")
	}
	p.advance() // consume ')'

	return expr, nil
}

// identifierexpr ::= identifier | identifier '(' (expression (',' expression)*)? ')'
func (p *Parser) parseIdentifierExpr() (blast.Expr, error) {
	pos := p.current.Pos
	name := p.current.Text
	p.advance()

	if !p.current.Is('(') {
		return &blast.VariableExpr{Name: name, Pos: pos}, nil
	}
	p.advance() // consume '('

	args := []blast.Expr{}
	if !p.current.Is(')') {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.current.Is(')') {
				break
			}
			if !p.current.Is(',') {
				return nil, p.parseError(ErrSyntax, "expected ')' or ',' in argument list")
			}
			p.advance() // consume ','
		}
	}
	p.advance() // consume ')'

	return &blast.CallExpr{Callee: name, Args: args, Pos: pos}, nil
}

// parseBinOpRHS folds "(operator primary)*" into lhs. Operators binding
// less tightly than minPrec end the loop and are left for the caller.
//
//	binoprhs ::= (binop primary)*
func (p *Parser) parseBinOpRHS(minPrec int, lhs blast.Expr) (blast.Expr, error) {
	for {
		prec := p.tokenPrecedence()
		if prec < minPrec {
			return lhs, nil
		}

		op := p.current.Char
		p.advance() // consume operator

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		// A tighter operator after rhs takes rhs as its left operand
		if prec < p.tokenPrecedence() {
			rhs, err = p.parseBinOpRHS(prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &blast.BinaryExpr{Op: op, Left: lhs, Right: rhs, Pos: lhs.Position()}
	}
}

// tokenPrecedence returns the strength of the lookahead operator, or -1
// if the lookahead is not a binary operator
func (p *Parser) tokenPrecedence() int {
	if p.current.Kind != TokenChar {
		return -1
	}
	strength, ok := p.precedence.Lookup(p.current.Char)
	if !ok {
		return -1
	}
	return strength
}

// prime reads the first lookahead token
func (p *Parser) prime() {
	if !p.primed {
		p.primed = true
		p.advance()
	}
}

// advance reads the next non-whitespace token into current
func (p *Parser) advance() {
	for {
		p.current = p.lexer.NextToken()
		if p.current.Kind != TokenWhitespace {
			break
		}
	}

	if p.logger.IsLevelEnabled(bllog.LevelTrace) {
		p.logger.Trace("token", bllog.Fields{
			"token": p.current.String(),
			"pos":   p.current.Pos.String(),
		})
	}
}

// parseError creates an error positioned at the lookahead token
func (p *Parser) parseError(kind ErrorKind, message string) error {
	return &ParseError{
		Kind:    kind,
		Message: message,
		Pos:     p.current.Pos,
		Token:   p.current,
	}
}
