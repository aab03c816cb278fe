package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symcalc/internal/driver"
)

type evalCall struct {
	line  string
	stage driver.Stage
}

func fakeEval(calls *[]evalCall) EvalFunc {
	return func(_ context.Context, line string, stage driver.Stage) (string, bool) {
		*calls = append(*calls, evalCall{line, stage})
		return "out:" + line + "\n", strings.Contains(line, "@")
	}
}

func TestHistoryNavigation(t *testing.T) {
	h := NewHistory(3)
	for _, l := range []string{"a", "b", "b", "c", "d"} {
		h.Push(l)
	}
	assert.Equal(t, []string{"b", "c", "d"}, h.Entries())

	got, ok := h.Prev("draft")
	require.True(t, ok)
	assert.Equal(t, "d", got)
	got, _ = h.Prev("ignored")
	assert.Equal(t, "c", got)
	got, _ = h.Prev("")
	assert.Equal(t, "b", got)
	_, ok = h.Prev("")
	assert.False(t, ok)

	got, _ = h.Next()
	assert.Equal(t, "c", got)
	got, _ = h.Next()
	assert.Equal(t, "d", got)
	got, ok = h.Next()
	require.True(t, ok)
	assert.Equal(t, "draft", got)
	_, ok = h.Next()
	assert.False(t, ok)
}

func TestHistoryDisabled(t *testing.T) {
	h := NewHistory(0)
	h.Push("x")
	assert.Empty(t, h.Entries())
	_, ok := h.Prev("")
	assert.False(t, ok)
}

func typeLine(m *replModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestREPLModelEvaluatesAndSwitchesStage(t *testing.T) {
	var calls []evalCall
	m := newREPLModel(context.Background(), REPLOptions{History: 10, Eval: fakeEval(&calls)})

	typeLine(m, "1+1")
	assert.Equal(t, "1+1", m.input.Value())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Empty(t, m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, driver.StageAST, m.stage)
	assert.Contains(t, m.View(), "[ast]")

	typeLine(m, "1 @")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.lastFail)

	assert.Equal(t, []evalCall{{"1+1", driver.StageSimplify}, {"1 @", driver.StageAST}}, calls)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "1 @", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "1+1", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.input.Value())
}

func TestREPLModelBlankLineIsIgnored(t *testing.T) {
	var calls []evalCall
	m := newREPLModel(context.Background(), REPLOptions{Eval: fakeEval(&calls)})
	typeLine(m, "   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, calls)
}

func TestREPLModelQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc} {
		m := newREPLModel(context.Background(), REPLOptions{})
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	}
}

func TestRunPlain(t *testing.T) {
	var calls []evalCall
	in := strings.NewReader("1+1\n\n:stage tokens\nx\n:next\ny\n:stage nope\n:q\nnever\n")
	var out bytes.Buffer
	err := RunPlain(context.Background(), in, &out, REPLOptions{Eval: fakeEval(&calls)})
	require.NoError(t, err)

	assert.Equal(t, []evalCall{
		{"1+1", driver.StageSimplify},
		{"x", driver.StageTokens},
		{"y", driver.StageSimplify},
	}, calls)
	assert.Contains(t, out.String(), ">> out:1+1\n")
	assert.Contains(t, out.String(), "stage: tokens\n")
	assert.Contains(t, out.String(), `invalid stage: "nope"`)
}

func TestRunPlainStopsAtEOF(t *testing.T) {
	var calls []evalCall
	err := RunPlain(context.Background(), strings.NewReader("2"), &bytes.Buffer{}, REPLOptions{Prompt: "> ", Eval: fakeEval(&calls)})
	require.NoError(t, err)
	assert.Len(t, calls, 1)
}

func TestProgressModelCountsItems(t *testing.T) {
	lines := []driver.BatchLine{{Number: 1, Text: "1"}, {Number: 4, Text: "x @"}}
	m := NewProgressModel("batch", lines, nil).(*progressModel)

	m.applyItem(driver.BatchItem{Line: 4, Failed: true})
	m.applyItem(driver.BatchItem{Line: 1, Cached: true})
	m.applyItem(driver.BatchItem{Line: 1, Cached: true})
	m.applyItem(driver.BatchItem{Line: 99})

	assert.Equal(t, 2, m.finished)
	assert.Equal(t, "cached", m.items[0].status)
	assert.Equal(t, "error", m.items[1].status)

	_, cmd := m.Update(doneMsg{})
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "done: batch (2/2)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "日本...", truncate("日本語の文字列", 7))
	assert.Equal(t, "abcd", truncate("abcd", 4))
	assert.Equal(t, "a...", truncate("abcde", 4))
	assert.Equal(t, "日...", truncate("日本語", 5))
}
