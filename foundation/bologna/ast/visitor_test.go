// File: visitor_test.go
// Title: Bologna AST Visitor Tests
// Description: Tests for the S-expression printer, the JSON encoder and
//              visitor dispatch.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package ast

import (
	"encoding/json"
	"math"
	"testing"
)

func num(v float64) *NumberExpr   { return &NumberExpr{Value: v} }
func ident(n string) *VariableExpr { return &VariableExpr{Name: n} }

func bin(op rune, l, r Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: l, Right: r}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"integer", num(12), "12"},
		{"fraction", num(1.5), "1.5"},
		{"variable", ident("x"), "x"},
		{"nested binary", bin('+', num(1), bin('*', num(2), num(3))), "(+ 1 (* 2 3))"},
		{"call", &CallExpr{Callee: "foo", Args: []Expr{num(1), num(2)}}, "(call foo 1 2)"},
		{"call without args", &CallExpr{Callee: "foo"}, "(call foo)"},
		{"prototype", &Prototype{Name: "f", Params: []string{"x", "y"}}, "(proto f x y)"},
		{"prototype without params", &Prototype{Name: "f"}, "(proto f)"},
		{
			"function",
			&Function{
				Proto: &Prototype{Name: "f", Params: []string{"x", "y"}},
				Body:  bin('+', ident("x"), ident("y")),
			},
			"(def (proto f x y) (+ x y))",
		},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.node); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringMatchesFormat(t *testing.T) {
	node := bin('<', ident("a"), num(3))
	if node.String() != Format(node) {
		t.Errorf("String() = %q, Format() = %q", node.String(), Format(node))
	}
}

func TestEncode(t *testing.T) {
	fn := &Function{
		Proto: &Prototype{Name: "__anon_expr", Pos: Position{Line: 1, Column: 1}},
		Body: &CallExpr{
			Callee: "foo",
			Args:   []Expr{num(1), bin('-', ident("x"), num(2))},
			Pos:    Position{Line: 1, Column: 1},
		},
		Pos: Position{Line: 1, Column: 1},
	}

	raw, err := json.Marshal(Encode(fn))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if decoded["node"] != "function" || decoded["pos"] != "1:1" {
		t.Errorf("unexpected function object: %v", decoded)
	}

	proto := decoded["prototype"].(map[string]interface{})
	if proto["name"] != "__anon_expr" {
		t.Errorf("prototype name = %v", proto["name"])
	}
	if params := proto["params"].([]interface{}); len(params) != 0 {
		t.Errorf("params = %v, want empty", params)
	}

	body := decoded["body"].(map[string]interface{})
	args := body["args"].([]interface{})
	if len(args) != 2 {
		t.Fatalf("len(args) = %d, want 2", len(args))
	}
	second := args[1].(map[string]interface{})
	if second["node"] != "binary" || second["op"] != "-" {
		t.Errorf("second arg = %v", second)
	}

	if Encode(nil) != nil {
		t.Error("Encode(nil) should be nil")
	}
}

// countingVisitor counts nodes by type
type countingVisitor struct {
	counts map[string]int
}

func (c *countingVisitor) VisitNumber(*NumberExpr) interface{} {
	c.counts["number"]++
	return nil
}

func (c *countingVisitor) VisitVariable(*VariableExpr) interface{} {
	c.counts["variable"]++
	return nil
}

func (c *countingVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	c.counts["binary"]++
	expr.Left.Accept(c)
	expr.Right.Accept(c)
	return nil
}

func (c *countingVisitor) VisitCall(expr *CallExpr) interface{} {
	c.counts["call"]++
	for _, arg := range expr.Args {
		arg.Accept(c)
	}
	return nil
}

func (c *countingVisitor) VisitPrototype(*Prototype) interface{} {
	c.counts["prototype"]++
	return nil
}

func (c *countingVisitor) VisitFunction(fn *Function) interface{} {
	c.counts["function"]++
	fn.Proto.Accept(c)
	fn.Body.Accept(c)
	return nil
}

func TestVisitorDispatch(t *testing.T) {
	fn := &Function{
		Proto: &Prototype{Name: "f", Params: []string{"x"}},
		Body:  bin('*', ident("x"), &CallExpr{Callee: "g", Args: []Expr{num(4)}}),
	}

	cv := &countingVisitor{counts: make(map[string]int)}
	fn.Accept(cv)

	want := map[string]int{"function": 1, "prototype": 1, "binary": 1, "variable": 1, "call": 1, "number": 1}
	for kind, n := range want {
		if cv.counts[kind] != n {
			t.Errorf("counts[%s] = %d, want %d", kind, cv.counts[kind], n)
		}
	}
}

func TestIsAnonymous(t *testing.T) {
	anon := &Function{Proto: &Prototype{Name: "__anon_expr"}, Body: num(1)}
	named := &Function{Proto: &Prototype{Name: "f"}, Body: num(1)}

	if !anon.IsAnonymous("__anon_expr") {
		t.Error("anonymous wrapper not detected")
	}
	if named.IsAnonymous("__anon_expr") {
		t.Error("named function reported as anonymous")
	}
}

func TestEncodeNonFiniteNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  interface{}
	}{
		{2.5, 2.5},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(FormatNumber(tt.value), func(t *testing.T) {
			obj := Encode(num(tt.value))
			if obj["value"] != tt.want {
				t.Errorf("value = %v, want %v", obj["value"], tt.want)
			}
			if _, err := json.Marshal(obj); err != nil {
				t.Errorf("json.Marshal() error = %v", err)
			}
		})
	}
}
