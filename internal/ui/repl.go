package ui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"symcalc/internal/driver"
)

var (
	activeStageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	idleStageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	echoStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	failStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type replModel struct {
	ctx      context.Context
	opts     REPLOptions
	input    textinput.Model
	history  *History
	stage    driver.Stage
	width    int
	lastFail bool
	quitting bool
}

func newREPLModel(ctx context.Context, opts REPLOptions) *replModel {
	ti := textinput.New()
	ti.Prompt = opts.prompt()
	ti.Placeholder = "2x + 1/3"
	ti.Focus()
	return &replModel{
		ctx:     ctx,
		opts:    opts,
		input:   ti,
		history: NewHistory(opts.History),
		stage:   opts.Stage,
		width:   80,
	}
}

// RunREPL starts the interactive read loop and blocks until the user exits.
func RunREPL(ctx context.Context, in io.Reader, out io.Writer, opts REPLOptions) error {
	program := tea.NewProgram(newREPLModel(ctx, opts),
		tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	_, err := program.Run()
	return err
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 10)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyTab:
			m.stage = m.stage.Next()
			return m, nil
		case tea.KeyUp:
			if line, ok := m.history.Prev(m.input.Value()); ok {
				m.setInput(line)
			}
			return m, nil
		case tea.KeyDown:
			if line, ok := m.history.Next(); ok {
				m.setInput(line)
			}
			return m, nil
		case tea.KeyEnter:
			return m, m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) setInput(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
}

func (m *replModel) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return nil
	}
	m.history.Push(line)

	out, failed := m.opts.Eval(m.ctx, line, m.stage)
	m.lastFail = failed
	echo := echoStyle.Render(truncate(m.input.Prompt+line, m.width))
	return tea.Println(echo + "\n" + strings.TrimRight(out, "\n"))
}

func (m *replModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	for i, st := range driver.Stages() {
		if i > 0 {
			b.WriteString(" ")
		}
		if st == m.stage {
			b.WriteString(activeStageStyle.Render("[" + st.String() + "]"))
		} else {
			b.WriteString(idleStageStyle.Render(" " + st.String() + " "))
		}
	}
	hint := "  tab: stage  ↑/↓: history  esc: quit"
	if m.lastFail {
		hint = failStyle.Render("  last line failed") + idleStageStyle.Render(hint)
	} else {
		hint = idleStageStyle.Render(hint)
	}
	b.WriteString(hint)
	return b.String() + "\n" + m.input.View() + "\n"
}
