// File: doc.go
// Title: Bologna Abstract Syntax Tree Package Documentation
// Description: Package documentation for the Bologna AST: expression,
//              prototype and function definition nodes, the visitor
//              interface and the printers built on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST implementation

/*
Package ast defines the abstract syntax tree produced by the Bologna parser.

The node set is closed. Expressions are one of

  - *NumberExpr     numeric literal
  - *VariableExpr   reference to a name (never resolved)
  - *BinaryExpr     binary operation, the operator is a single rune
  - *CallExpr       call of a named function with argument expressions

and the two remaining nodes describe functions:

  - *Prototype      function name plus parameter names
  - *Function       prototype plus body expression

Nodes cannot be implemented outside this package. Consumers either switch
on the concrete type or implement Visitor, which has one method per node
type so that a new node type fails to compile in every consumer that does
not handle it.

Every node owns its children exclusively and is not modified after the
parser builds it.

Printing:

	fmt.Println(ast.Format(node)) // (def (proto f x y) (+ x y))

Encoding for JSON transports:

	data, _ := json.Marshal(ast.Encode(node))
*/
package ast
