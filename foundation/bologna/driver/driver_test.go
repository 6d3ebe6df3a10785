// File: driver_test.go
// Title: Bologna Driver Tests
// Description: Tests for top-level dispatch, error recovery, summaries and
//              report messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package driver

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blast "github.com/msto63/bologna/foundation/bologna/ast"
	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	bllog "github.com/msto63/bologna/foundation/core/log"
)

func quietOptions() blparser.Options {
	return blparser.Options{Logger: bllog.Discard()}
}

func messages(reports []Report) []string {
	result := make([]string, len(reports))
	for i, r := range reports {
		result[i] = r.Message()
	}
	return result
}

func TestParseAllDispatch(t *testing.T) {
	reports, summary := ParseAll("def f(x) x * 2; extern sin(a); f(3) + 1;", quietOptions())

	assert.Equal(t, []string{
		"Parsed a function definition.",
		"Skipped separator",
		"Parsed an extern",
		"Skipped separator",
		"Parsed a top-level expr",
		"Skipped separator",
	}, messages(reports))

	assert.Equal(t, Summary{Definitions: 1, Externs: 1, Expressions: 1, Separators: 3}, summary)
	assert.Equal(t, 3, summary.Parsed())

	require.IsType(t, &blast.Function{}, reports[0].Node)
	assert.Equal(t, "(def (proto f x) (* x 2))", blast.Format(reports[0].Node))
	assert.Equal(t, "(proto sin a)", blast.Format(reports[2].Node))
	assert.Equal(t, "(def (proto __anon_expr) (+ (call f 3) 1))", blast.Format(reports[4].Node))
	assert.Nil(t, reports[1].Node)
}

func TestRecoverySkipsOneToken(t *testing.T) {
	t.Run("unclosed paren before separator", func(t *testing.T) {
		reports, summary := ParseAll("(1; 2", quietOptions())

		require.Len(t, reports, 2)
		assert.False(t, reports[0].OK())
		assert.Equal(t, KindExpression, reports[0].Kind)
		assert.Equal(t, "Error: expected ')'", reports[0].Message())
		assert.Nil(t, reports[0].Node)
		assert.True(t, reports[1].OK())
		assert.Equal(t, "2", blast.Format(reports[1].Node.(*blast.Function).Body))
		assert.Equal(t, 1, summary.Failures)
		assert.Equal(t, 1, summary.Expressions)
	})

	t.Run("stray closing paren", func(t *testing.T) {
		reports, summary := ParseAll(") 4", quietOptions())

		require.Len(t, reports, 2)
		assert.Equal(t, "Error: expected expression", reports[0].Message())
		assert.True(t, reports[1].OK())
		assert.Equal(t, 1, summary.Failures)
	})

	t.Run("bad prototype", func(t *testing.T) {
		reports, summary := ParseAll("def 1", quietOptions())

		require.Len(t, reports, 1)
		assert.Equal(t, KindDefinition, reports[0].Kind)
		assert.Equal(t, "Error: expected function name in prototype", reports[0].Message())
		assert.Equal(t, Summary{Failures: 1}, summary)
	})

	t.Run("malformed number", func(t *testing.T) {
		reports, _ := ParseAll("1.2.3", quietOptions())

		require.Len(t, reports, 1)
		var perr *blparser.ParseError
		require.True(t, errors.As(reports[0].Err, &perr))
		assert.Equal(t, blparser.ErrLexical, perr.Kind)
	})
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "# only a comment\n"} {
		reports, summary := ParseAll(input, quietOptions())
		assert.Empty(t, reports, "input %q", input)
		assert.Equal(t, Summary{}, summary)
	}
}

func TestNextAfterEndOfInput(t *testing.T) {
	d := New(blparser.NewString("1", quietOptions()), Options{Logger: bllog.Discard()})

	report, ok := d.Next()
	require.True(t, ok)
	assert.True(t, report.OK())

	for i := 0; i < 3; i++ {
		_, ok = d.Next()
		assert.False(t, ok)
	}
	assert.Equal(t, 1, d.Summary().Expressions)
}

func TestPromptBeforeEachConstruct(t *testing.T) {
	prompts := 0
	d := New(blparser.NewString("1; 2", quietOptions()), Options{
		Logger: bllog.Discard(),
		Prompt: func() { prompts++ },
	})

	summary := d.Run(nil)

	// 1, ';', 2 and the final end of input check
	assert.Equal(t, 4, prompts)
	assert.Equal(t, 2, summary.Expressions)
	assert.Equal(t, 1, summary.Separators)
}

func TestCustomSeparator(t *testing.T) {
	d := New(blparser.NewString("1 | 2", quietOptions()), Options{
		Logger:    bllog.Discard(),
		Separator: '|',
	})

	var kinds []Kind
	d.Run(func(r Report) { kinds = append(kinds, r.Kind) })

	assert.Equal(t, []Kind{KindExpression, KindSeparator, KindExpression}, kinds)
}

func TestFailuresAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := bllog.NewWithConfig(bllog.Config{Level: bllog.LevelDebug, Format: bllog.FormatText, Output: &buf})

	reports, _ := ParseAll("foo(1 2)", blparser.Options{Logger: logger})
	require.NotEmpty(t, reports)

	out := buf.String()
	assert.Contains(t, out, "expected ')' or ',' in argument list")
	assert.Contains(t, out, "error_code=SYNTAX")
	assert.Contains(t, out, "parse session completed")
}

type brokenReader struct {
	r *strings.Reader
}

func (b brokenReader) ReadRune() (rune, int, error) {
	if b.r.Len() == 0 {
		return 0, 0, errors.New("stdin closed unexpectedly")
	}
	return b.r.ReadRune()
}

func TestReadErrorEndsSession(t *testing.T) {
	p := blparser.New(brokenReader{r: strings.NewReader("extern f()")}, quietOptions())
	d := New(p, Options{Logger: bllog.Discard()})

	summary := d.Run(nil)

	assert.Equal(t, 1, summary.Externs)
	require.Error(t, d.Err())
	assert.Contains(t, d.Err().Error(), "stdin closed")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "definition", KindDefinition.String())
	assert.Equal(t, "extern", KindExtern.String())
	assert.Equal(t, "expression", KindExpression.String())
	assert.Equal(t, "separator", KindSeparator.String())
}
