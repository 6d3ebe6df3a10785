// ============================================================================
// Bologna - Kaleidoscope front end
// ============================================================================
//
// Package:     console
// Description: Bubbletea model of the interactive console
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	blast "github.com/msto63/bologna/foundation/bologna/ast"
	bldriver "github.com/msto63/bologna/foundation/bologna/driver"
	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	"github.com/msto63/bologna/internal/repl"
	"github.com/msto63/bologna/pkg/core/version"
)

// Config holds console configuration
type Config struct {
	Prompt string
	Parser blparser.Options
	Lexer  blparser.LexerOptions
}

// Model is the main Bubbletea model of the console
type Model struct {
	// State
	width  int
	height int
	ready  bool
	mode   Mode

	// Components
	input    textinput.Model
	viewport viewport.Model

	// History
	history []Entry
	summary bldriver.Summary

	cfg Config
}

// New creates a new console model
func New(cfg Config) Model {
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Placeholder = "def f(x) x * x"
	ti.CharLimit = 4096
	ti.Focus()

	return Model{
		input: ti,
		cfg:   cfg,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.mode == ModeParse {
				m.mode = ModeTokens
			} else {
				m.mode = ModeParse
			}
			return m, nil

		case "ctrl+l":
			m.history = nil
			m.summary = bldriver.Summary{}
			m.updateViewportContent()
			return m, nil

		case "enter":
			line := m.input.Value()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.input.Reset()
			return m, m.evaluate(line, m.mode)

		case "pgup", "pgdown":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title + mode line + spacing
		footerHeight := 5 // Border + input + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(m.cfg.Prompt) - 2
		m.updateViewportContent()
		return m, nil

	case evaluatedMsg:
		m.history = append(m.history, msg.entry)
		m.summary = addSummary(m.summary, msg.entry.Summary)
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// evaluate runs the line in a fresh session
func (m *Model) evaluate(line string, mode Mode) tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		return evaluatedMsg{entry: Evaluate(line, mode, cfg)}
	}
}

// Evaluate parses or tokenizes one line in a fresh session
func Evaluate(line string, mode Mode, cfg Config) Entry {
	entry := Entry{Input: line, Mode: mode}

	if mode == ModeTokens {
		for _, tok := range blparser.Tokenize(line, cfg.Lexer) {
			if tok.Kind == blparser.TokenEOF {
				break
			}
			entry.Lines = append(entry.Lines, Line{
				Text:  repl.DescribeToken(tok),
				OK:    tok.Kind != blparser.TokenIllegal,
				IsAST: true,
			})
		}
		return entry
	}

	reports, summary := bldriver.ParseAll(line, cfg.Parser)
	entry.Summary = summary
	for _, r := range reports {
		if r.Kind == bldriver.KindSeparator {
			continue
		}
		entry.Lines = append(entry.Lines, Line{Text: r.Message(), OK: r.OK()})
		if r.OK() {
			entry.Lines = append(entry.Lines, Line{Text: blast.Format(r.Node), OK: true, IsAST: true})
		}
	}
	if len(entry.Lines) == 0 {
		entry.Lines = append(entry.Lines, Line{Text: "(nothing to parse)", OK: true})
	}
	return entry
}

func addSummary(a, b bldriver.Summary) bldriver.Summary {
	a.Definitions += b.Definitions
	a.Externs += b.Externs
	a.Expressions += b.Expressions
	a.Separators += b.Separators
	a.Failures += b.Failures
	return a
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Starting console..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(HistoryBoxStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	title := LogoStyle.Render(version.Banner())
	mode := ModeStyle.Render("mode: " + m.mode.String())
	stats := StatusStyle.Render(fmt.Sprintf("%d inputs · %d parsed · %d errors",
		len(m.history), m.summary.Parsed(), m.summary.Failures))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", mode, "  ", stats)
}

func (m Model) renderHelpBar() string {
	return HelpStyle.Render("enter: submit • tab: parse/tokens • ctrl+l: clear • pgup/pgdn: scroll • esc: quit")
}

// updateViewportContent renders the history into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(RenderHistory(m.history))
}

// RenderHistory renders all entries, oldest first
func RenderHistory(history []Entry) string {
	if len(history) == 0 {
		return SubHeaderStyle.Render("Enter a definition, an extern or an expression.")
	}

	var b strings.Builder
	for i, entry := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(InputEchoStyle.Render(fmt.Sprintf("[%s] %s", entry.Mode, entry.Input)))
		b.WriteString("\n")
		for _, line := range entry.Lines {
			b.WriteString(renderLine(line))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderLine(line Line) string {
	switch {
	case !line.OK:
		return ErrorStyle.Render(line.Text)
	case line.IsAST:
		return ASTStyle.Render(line.Text)
	default:
		return SuccessStyle.Render(line.Text)
	}
}

// Run starts the console
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
