package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"symcalc/internal/driver"
)

// сколько последних строк показываем под прогресс-баром
const progressTail = 8

type progressModel struct {
	title    string
	events   <-chan driver.BatchItem
	spinner  spinner.Model
	prog     progress.Model
	items    []lineItem
	index    map[int]int
	finished int
	width    int
	done     bool
}

type lineItem struct {
	number int
	text   string
	status string
}

type itemMsg driver.BatchItem
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders batch progress.
// The model quits when events is closed.
func NewProgressModel(title string, lines []driver.BatchLine, events <-chan driver.BatchItem) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]lineItem, 0, len(lines))
	index := make(map[int]int, len(lines))
	for i, l := range lines {
		items = append(items, lineItem{number: l.Number, text: l.Text, status: "queued"})
		index[l.Number] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForItem())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemMsg:
		cmd := m.applyItem(driver.BatchItem(msg))
		return m, tea.Batch(cmd, m.listenForItem())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d/%d)", m.title, m.finished, len(m.items))
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-12-10, 20)
	start := max(len(m.items)-progressTail, 0)
	for _, item := range m.items[start:] {
		status := styleStatus(item.status).Render(fmt.Sprintf("%8s", item.status))
		fmt.Fprintf(&b, "  %s %5d  %s\n", status, item.number, truncate(item.text, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForItem() tea.Cmd {
	return func() tea.Msg {
		it, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return itemMsg(it)
	}
}

func (m *progressModel) applyItem(it driver.BatchItem) tea.Cmd {
	idx, ok := m.index[it.Line]
	if !ok {
		return nil
	}
	if m.items[idx].status == "queued" {
		m.finished++
	}
	m.items[idx].status = statusLabel(it)
	return m.prog.SetPercent(float64(m.finished) / float64(len(m.items)))
}

func statusLabel(it driver.BatchItem) string {
	switch {
	case it.Failed:
		return "error"
	case it.Cached:
		return "cached"
	default:
		return "done"
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	// Truncate считает хвост внутри width
	return runewidth.Truncate(value, width, "...")
}
