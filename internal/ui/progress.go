// Package ui renders training progress in the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	trainprogress "codeclass/internal/progress"
)

type progressModel struct {
	title      string
	events     <-chan trainprogress.Event
	spinner    spinner.Model
	prog       progress.Model
	items      []langItem
	index      map[string]int
	stageLabel string
	width      int
	done       bool
	failed     bool
}

type langItem struct {
	name   string
	status string
	stage  trainprogress.Stage
	state  trainprogress.Status
}

type eventMsg trainprogress.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-language
// training progress until events is closed.
func NewProgressModel(title string, languages []string, events <-chan trainprogress.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		index:   make(map[string]int, len(languages)),
		width:   80,
	}
	for _, lang := range languages {
		m.add(lang)
	}
	return m
}

func (m *progressModel) add(lang string) int {
	m.items = append(m.items, langItem{name: lang, status: "queued", state: trainprogress.StatusQueued})
	m.index[lang] = len(m.items) - 1
	return len(m.items) - 1
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(trainprogress.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
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
	}
	return m, nil
}

func (m *progressModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.stageLabel != "" {
		header = fmt.Sprintf("%s (%s)", header, m.stageLabel)
	}
	switch {
	case m.done && m.failed:
		header = "failed: " + header
	case m.done:
		header = "done: " + header
	default:
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-12-4, 20)
	for _, item := range m.items {
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		fmt.Fprintf(&b, "  %s %s\n", statusStyled, truncate(item.name, nameWidth))
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

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev trainprogress.Event) tea.Cmd {
	label := statusLabel(ev.Stage, ev.Status)
	if ev.Status == trainprogress.StatusError {
		m.failed = true
	}
	if ev.Language == "" {
		if label != "" {
			m.stageLabel = label
		}
		return nil
	}
	idx, ok := m.index[ev.Language]
	if !ok {
		// languages are only known once the corpus is loaded
		idx = m.add(ev.Language)
	}
	if label != "" {
		m.items[idx].status = label
	}
	m.items[idx].stage = ev.Stage
	m.items[idx].state = ev.Status
	if ev.Stage == trainprogress.StageBayes && ev.Status == trainprogress.StatusDone {
		m.items[idx].status = "done"
	}
	return m.prog.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.items {
		total += trainprogress.Fraction(item.stage, item.state)
	}
	return total / float64(len(m.items))
}

func statusLabel(stage trainprogress.Stage, status trainprogress.Status) string {
	switch status {
	case trainprogress.StatusQueued:
		return "queued"
	case trainprogress.StatusError:
		return "error"
	case trainprogress.StatusWorking, trainprogress.StatusDone:
		return stageLabel(stage)
	default:
		return ""
	}
}

func stageLabel(stage trainprogress.Stage) string {
	switch stage {
	case trainprogress.StageLoad:
		return "loading"
	case trainprogress.StageTokenize:
		return "tokenizing"
	case trainprogress.StageMatchTree:
		return "tree"
	case trainprogress.StageFrequency:
		return "counting"
	case trainprogress.StageBayes:
		return "estimating"
	default:
		return ""
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "queued":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
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
	return runewidth.Truncate(value, width, "...")
}
