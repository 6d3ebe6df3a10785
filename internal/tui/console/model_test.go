// ============================================================================
// Bologna - Kaleidoscope front end
// ============================================================================
//
// Package:     console
// Description: Tests for the console model
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package console

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	bllog "github.com/msto63/bologna/foundation/core/log"
)

func testConfig() Config {
	return Config{Parser: blparser.Options{Logger: bllog.Discard()}}
}

func readyModel(t *testing.T) Model {
	t.Helper()
	updated, _ := New(testConfig()).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestEvaluateParse(t *testing.T) {
	entry := Evaluate("def f(x) x * 2; f(1", ModeParse, testConfig())

	if len(entry.Lines) != 3 {
		t.Fatalf("lines = %+v, want 3", entry.Lines)
	}
	if entry.Lines[0].Text != "Parsed a function definition." || !entry.Lines[0].OK {
		t.Errorf("line 0 = %+v", entry.Lines[0])
	}
	if entry.Lines[1].Text != "(def (proto f x) (* x 2))" || !entry.Lines[1].IsAST {
		t.Errorf("line 1 = %+v", entry.Lines[1])
	}
	if entry.Lines[2].OK || !strings.HasPrefix(entry.Lines[2].Text, "Error: ") {
		t.Errorf("line 2 = %+v", entry.Lines[2])
	}
}

func TestEvaluateTokens(t *testing.T) {
	entry := Evaluate("x+1.2.3", ModeTokens, testConfig())

	want := []string{"IDENTIFIER: 'x'", "CHAR: '+'", "ILLEGAL: '1.2.3'"}
	if len(entry.Lines) != len(want) {
		t.Fatalf("lines = %+v", entry.Lines)
	}
	for i, line := range entry.Lines {
		if line.Text != want[i] {
			t.Errorf("line %d = %q, want %q", i, line.Text, want[i])
		}
	}
	if entry.Lines[2].OK {
		t.Error("illegal token should render as error")
	}
}

func TestEvaluateEmpty(t *testing.T) {
	entry := Evaluate(";;", ModeParse, testConfig())
	if len(entry.Lines) != 1 || entry.Lines[0].Text != "(nothing to parse)" {
		t.Errorf("lines = %+v", entry.Lines)
	}
}

func TestTabTogglesMode(t *testing.T) {
	m := readyModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.mode != ModeTokens {
		t.Fatalf("mode = %v, want tokens", m.mode)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if updated.(Model).mode != ModeParse {
		t.Errorf("mode = %v, want parse", updated.(Model).mode)
	}
}

func TestSubmitLine(t *testing.T) {
	m := readyModel(t)
	m.input.SetValue("extern sin(x)")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("enter should return an evaluation command")
	}
	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}

	msg := cmd()
	updated, _ = m.Update(msg)
	m = updated.(Model)

	if len(m.history) != 1 {
		t.Fatalf("history = %+v", m.history)
	}
	if m.history[0].Lines[0].Text != "Parsed an extern" {
		t.Errorf("first line = %q", m.history[0].Lines[0].Text)
	}
	if !strings.Contains(m.View(), "mode: parse") {
		t.Error("View() should show the mode")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if len(updated.(Model).history) != 0 {
		t.Error("ctrl+l should clear the history")
	}
}

func TestHeaderCountsParses(t *testing.T) {
	m := readyModel(t)

	for _, line := range []string{"def f(x) x; f(2)", "extern g(); 1 +"} {
		m.input.SetValue(line)
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		updated, _ = updated.(Model).Update(cmd())
		m = updated.(Model)
	}

	if m.summary.Definitions != 1 || m.summary.Externs != 1 || m.summary.Expressions != 1 {
		t.Errorf("summary = %+v", m.summary)
	}
	if m.summary.Failures != 1 {
		t.Errorf("failures = %d, want 1", m.summary.Failures)
	}
	if header := m.renderHeader(); !strings.Contains(header, "2 inputs · 3 parsed · 1 errors") {
		t.Errorf("header = %q", header)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if updated.(Model).summary.Parsed() != 0 {
		t.Error("ctrl+l should reset the counts")
	}
}

func TestBlankLineIsIgnored(t *testing.T) {
	m := readyModel(t)
	m.input.SetValue("   ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank input should not be evaluated")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := readyModel(t).Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("key %v should quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %v did not produce tea.QuitMsg", key)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	if !strings.Contains(RenderHistory(nil), "Enter a definition") {
		t.Error("empty history should show a hint")
	}

	out := RenderHistory([]Entry{{
		Input: "1 + 2",
		Mode:  ModeParse,
		Lines: []Line{{Text: "Parsed a top-level expr", OK: true}},
	}})
	if !strings.Contains(out, "[parse] 1 + 2") || !strings.Contains(out, "Parsed a top-level expr") {
		t.Errorf("RenderHistory() = %q", out)
	}
}
