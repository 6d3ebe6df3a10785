// File: visitor.go
// Title: Bologna AST Visitor
// Description: Visitor interface with one method per node type, plus the
//              S-expression printer and the JSON encoder built on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Visitor, printer and encoder

package ast

import (
	"math"
	"strconv"
	"strings"
)

// Visitor traverses AST nodes. Adding a node type adds a method here.
type Visitor interface {
	VisitNumber(expr *NumberExpr) interface{}
	VisitVariable(expr *VariableExpr) interface{}
	VisitBinary(expr *BinaryExpr) interface{}
	VisitCall(expr *CallExpr) interface{}
	VisitPrototype(proto *Prototype) interface{}
	VisitFunction(fn *Function) interface{}
}

// Format renders node as an S-expression:
//
//	(+ 1 (* 2 3))
//	(call foo 1 2)
//	(proto f x y)
//	(def (proto f x y) (+ x y))
func Format(node Node) string {
	if node == nil {
		return "<nil>"
	}
	sv := &StringVisitor{}
	node.Accept(sv)
	return sv.builder.String()
}

// StringVisitor writes the S-expression form of the nodes it visits
type StringVisitor struct {
	builder strings.Builder
}

// String returns everything written so far
func (sv *StringVisitor) String() string {
	return sv.builder.String()
}

func (sv *StringVisitor) VisitNumber(expr *NumberExpr) interface{} {
	sv.builder.WriteString(FormatNumber(expr.Value))
	return nil
}

func (sv *StringVisitor) VisitVariable(expr *VariableExpr) interface{} {
	sv.builder.WriteString(expr.Name)
	return nil
}

func (sv *StringVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	sv.builder.WriteByte('(')
	sv.builder.WriteRune(expr.Op)
	sv.builder.WriteByte(' ')
	sv.child(expr.Left)
	sv.builder.WriteByte(' ')
	sv.child(expr.Right)
	sv.builder.WriteByte(')')
	return nil
}

func (sv *StringVisitor) VisitCall(expr *CallExpr) interface{} {
	sv.builder.WriteString("(call ")
	sv.builder.WriteString(expr.Callee)
	for _, arg := range expr.Args {
		sv.builder.WriteByte(' ')
		sv.child(arg)
	}
	sv.builder.WriteByte(')')
	return nil
}

func (sv *StringVisitor) VisitPrototype(proto *Prototype) interface{} {
	sv.builder.WriteString("(proto ")
	sv.builder.WriteString(proto.Name)
	for _, param := range proto.Params {
		sv.builder.WriteByte(' ')
		sv.builder.WriteString(param)
	}
	sv.builder.WriteByte(')')
	return nil
}

func (sv *StringVisitor) VisitFunction(fn *Function) interface{} {
	sv.builder.WriteString("(def ")
	if fn.Proto != nil {
		fn.Proto.Accept(sv)
	} else {
		sv.builder.WriteString("<nil>")
	}
	sv.builder.WriteByte(' ')
	sv.child(fn.Body)
	sv.builder.WriteByte(')')
	return nil
}

func (sv *StringVisitor) child(expr Expr) {
	if expr == nil {
		sv.builder.WriteString("<nil>")
		return
	}
	expr.Accept(sv)
}

// FormatNumber prints a literal in its shortest exact form (12, 1.5, 1e+21)
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// EncodeNumber returns v for finite values and its printed form ("+Inf")
// otherwise; encoding/json rejects infinities
func EncodeNumber(v float64) interface{} {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return FormatNumber(v)
	}
	return v
}

// Encode converts node into nested maps and slices ready for
// encoding/json. Every object carries a "node" discriminator and a "pos"
// of the form "line:column".
func Encode(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}
	result, _ := node.Accept(encoder{}).(map[string]interface{})
	return result
}

type encoder struct{}

func (e encoder) object(kind string, pos Position) map[string]interface{} {
	return map[string]interface{}{
		"node": kind,
		"pos":  pos.String(),
	}
}

func (e encoder) expr(expr Expr) interface{} {
	if expr == nil {
		return nil
	}
	return expr.Accept(e)
}

func (e encoder) VisitNumber(expr *NumberExpr) interface{} {
	obj := e.object("number", expr.Pos)
	obj["value"] = EncodeNumber(expr.Value)
	return obj
}

func (e encoder) VisitVariable(expr *VariableExpr) interface{} {
	obj := e.object("variable", expr.Pos)
	obj["name"] = expr.Name
	return obj
}

func (e encoder) VisitBinary(expr *BinaryExpr) interface{} {
	obj := e.object("binary", expr.Pos)
	obj["op"] = string(expr.Op)
	obj["left"] = e.expr(expr.Left)
	obj["right"] = e.expr(expr.Right)
	return obj
}

func (e encoder) VisitCall(expr *CallExpr) interface{} {
	obj := e.object("call", expr.Pos)
	obj["callee"] = expr.Callee
	args := make([]interface{}, 0, len(expr.Args))
	for _, arg := range expr.Args {
		args = append(args, e.expr(arg))
	}
	obj["args"] = args
	return obj
}

func (e encoder) VisitPrototype(proto *Prototype) interface{} {
	obj := e.object("prototype", proto.Pos)
	obj["name"] = proto.Name
	params := make([]string, len(proto.Params))
	copy(params, proto.Params)
	obj["params"] = params
	return obj
}

func (e encoder) VisitFunction(fn *Function) interface{} {
	obj := e.object("function", fn.Pos)
	if fn.Proto != nil {
		obj["prototype"] = fn.Proto.Accept(e)
	}
	obj["body"] = e.expr(fn.Body)
	return obj
}
