// File: repl_test.go
// Title: REPL Tests
// Description: Tests for the interactive loop, file parsing and the token
//              dump.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package repl

import (
	"bytes"
	"strings"
	"testing"

	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	bllog "github.com/msto63/bologna/foundation/core/log"
)

func testConfig(input string) (Config, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Config{
		Banner: "Bologna v0.1.0",
		Prompt: "> ",
		Logger: bllog.Discard(),
		In:     strings.NewReader(input),
		Out:    &out,
		Err:    &errOut,
	}, &out, &errOut
}

func TestRun(t *testing.T) {
	cfg, out, errOut := testConfig("def f(x) x + 1;\nextern g();\n(1\n")
	cfg.PrintAST = true

	summary, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	stderr := errOut.String()
	if !strings.HasPrefix(stderr, "Bologna v0.1.0\n> ") {
		t.Errorf("stderr should start with banner and prompt: %q", stderr)
	}
	for _, want := range []string{"Parsed a function definition.", "Parsed an extern", "Error: expected ')'"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "Skipped separator") {
		t.Errorf("separators should not be reported:\n%s", stderr)
	}

	wantOut := "(def (proto f x) (+ x 1))\n(proto g)\n"
	if out.String() != wantOut {
		t.Errorf("stdout = %q, want %q", out.String(), wantOut)
	}

	if summary.Definitions != 1 || summary.Externs != 1 || summary.Failures != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestRunWithoutAST(t *testing.T) {
	cfg, out, _ := testConfig("1 + 2")

	if _, err := Run(cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty without PrintAST", out.String())
	}
}

func TestParseStream(t *testing.T) {
	cfg, out, errOut := testConfig("")

	source := "# sample\ndef add(a b) a + b;\n\nadd(1 2);\nadd(1, 2) * 3;\n"
	summary, err := ParseStream("sample.bl", strings.NewReader(source), cfg)
	if err != nil {
		t.Fatalf("ParseStream() error = %v", err)
	}

	wantOut := "(def (proto add a b) (+ a b))\n(def (proto __anon_expr) (* (call add 1 2) 3))\n"
	if out.String() != wantOut {
		t.Errorf("stdout = %q, want %q", out.String(), wantOut)
	}

	if !strings.Contains(errOut.String(), "sample.bl:4:7: Error: expected ')' or ',' in argument list") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "> ") {
		t.Error("ParseStream should not print prompts")
	}
	if summary.Failures < 1 || summary.Definitions != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestLex(t *testing.T) {
	cfg, out, errOut := testConfig("12+3*45\nfoo # comment\n")

	if err := Lex(cfg, blparser.LexerOptions{}); err != nil {
		t.Fatalf("Lex() error = %v", err)
	}

	want := strings.Join([]string{
		"NUMBER: '12' 12",
		"CHAR: '+'",
		"NUMBER: '3' 3",
		"CHAR: '*'",
		"NUMBER: '45' 45",
		"IDENTIFIER: 'foo'",
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
	// one prompt per line plus the one answered by end of input
	if strings.Count(errOut.String(), "> ") != 3 {
		t.Errorf("stderr = %q, want three prompts", errOut.String())
	}
}

func TestLexLongLine(t *testing.T) {
	name := strings.Repeat("x", 100*1024)
	cfg, out, _ := testConfig(name + " 7\nlast")
	cfg.Banner = ""

	if err := Lex(cfg, blparser.LexerOptions{}); err != nil {
		t.Fatalf("Lex() error = %v", err)
	}

	want := "IDENTIFIER: '" + name + "'\nNUMBER: '7' 7\nIDENTIFIER: 'last'\n"
	if out.String() != want {
		t.Errorf("stdout has %d bytes, want %d", out.Len(), len(want))
	}
}

func TestLexWhitespace(t *testing.T) {
	cfg, out, _ := testConfig("a b\n")
	cfg.Banner = ""

	if err := Lex(cfg, blparser.LexerOptions{EmitWhitespace: true}); err != nil {
		t.Fatalf("Lex() error = %v", err)
	}

	want := "IDENTIFIER: 'a'\nWHITESPACE: ' '\nIDENTIFIER: 'b'\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}

func TestDescribeToken(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4.5", "NUMBER: '4.5' 4.5"},
		{"def", "DEF: 'def'"},
		{"1.2.3", "ILLEGAL: '1.2.3'"},
		{";", "CHAR: ';'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := blparser.Tokenize(tt.input, blparser.LexerOptions{})[0]
			if got := DescribeToken(tok); got != tt.want {
				t.Errorf("DescribeToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
