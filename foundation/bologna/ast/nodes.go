// File: nodes.go
// Title: Bologna AST Node Definitions
// Description: Defines the AST node types: number, variable, binary and
//              call expressions, function prototypes and definitions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the S-expression form of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node's first token
	Position() Position

	node() // seals the interface
}

// Expr is implemented by the four expression nodes
type Expr interface {
	Node
	exprNode()
}

// Position represents a position in the source text
type Position struct {
	Offset int // Rune offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// NumberExpr is a numeric literal
type NumberExpr struct {
	Value float64
	Pos   Position
}

// VariableExpr references a name
type VariableExpr struct {
	Name string
	Pos  Position
}

// BinaryExpr applies a binary operator to two operands
type BinaryExpr struct {
	Op    rune
	Left  Expr
	Right Expr
	Pos   Position
}

// CallExpr calls a function by name
type CallExpr struct {
	Callee string
	Args   []Expr
	Pos    Position
}

// Prototype is a function signature: a name and parameter names.
// Duplicate parameter names are kept as written.
type Prototype struct {
	Name   string
	Params []string
	Pos    Position
}

// Function is a prototype with a body
type Function struct {
	Proto *Prototype
	Body  Expr
	Pos   Position
}

func (n *NumberExpr) node()   {}
func (n *VariableExpr) node() {}
func (n *BinaryExpr) node()   {}
func (n *CallExpr) node()     {}
func (n *Prototype) node()    {}
func (n *Function) node()     {}

func (n *NumberExpr) exprNode()   {}
func (n *VariableExpr) exprNode() {}
func (n *BinaryExpr) exprNode()   {}
func (n *CallExpr) exprNode()     {}

// Position implementations

func (n *NumberExpr) Position() Position   { return n.Pos }
func (n *VariableExpr) Position() Position { return n.Pos }
func (n *BinaryExpr) Position() Position   { return n.Pos }
func (n *CallExpr) Position() Position     { return n.Pos }
func (n *Prototype) Position() Position    { return n.Pos }
func (n *Function) Position() Position     { return n.Pos }

// Accept implementations

func (n *NumberExpr) Accept(v Visitor) interface{}   { return v.VisitNumber(n) }
func (n *VariableExpr) Accept(v Visitor) interface{} { return v.VisitVariable(n) }
func (n *BinaryExpr) Accept(v Visitor) interface{}   { return v.VisitBinary(n) }
func (n *CallExpr) Accept(v Visitor) interface{}     { return v.VisitCall(n) }
func (n *Prototype) Accept(v Visitor) interface{}    { return v.VisitPrototype(n) }
func (n *Function) Accept(v Visitor) interface{}     { return v.VisitFunction(n) }

// String implementations

func (n *NumberExpr) String() string   { return Format(n) }
func (n *VariableExpr) String() string { return Format(n) }
func (n *BinaryExpr) String() string   { return Format(n) }
func (n *CallExpr) String() string     { return Format(n) }
func (n *Prototype) String() string    { return Format(n) }
func (n *Function) String() string     { return Format(n) }

// IsAnonymous reports whether the function wraps a top-level expression
// under the given synthetic name
func (n *Function) IsAnonymous(anonymousName string) bool {
	return n.Proto != nil && n.Proto.Name == anonymousName && len(n.Proto.Params) == 0
}
