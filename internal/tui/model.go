// Package tui provides the Bubble Tea terminal screen for practising a drill.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"recall/internal/app"
	"recall/internal/domain"
)

const (
	focusText = iota
	focusCount
)

const defaultWidth = 80

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Background(lipgloss.Color("#6366F1")).
			Bold(true).
			Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	wordsStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
)

// Options seed a new terminal session
type Options struct {
	Text         string
	Count        string
	MaxTextBytes int64
	Rand         domain.Intner
	Logger       *slog.Logger
}

// Model implements the Bubble Tea drill screen.
type Model struct {
	drill  *domain.Drill
	rng    domain.Intner
	logger *slog.Logger

	text  textarea.Model
	count textinput.Model
	focus int

	keys keyMap
	help help.Model

	width  int
	height int

	status string
	errMsg string
}

// NewModel constructs the drill screen in the setup phase.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ta := textarea.New()
	ta.Placeholder = "Enter text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(defaultWidth - 4)
	ta.SetHeight(4)

	ti := textinput.New()
	ti.Prompt = "Words per step: "
	ti.CharLimit = 9
	ti.Placeholder = "1"

	drill := domain.NewDrill("terminal")
	drill.MaxTextBytes = opts.MaxTextBytes

	m := &Model{
		drill:  drill,
		rng:    opts.Rand,
		logger: logger,
		text:   ta,
		count:  ti,
		keys:   newKeyMap(),
		help:   help.New(),
		width:  defaultWidth,
	}

	m.setText(opts.Text)
	if opts.Count != "" {
		m.setCount(opts.Count)
	} else {
		m.count.SetValue(fmt.Sprint(domain.DefaultRemoveCount))
	}
	m.focusOn(focusText)

	return m
}

// Drill exposes the drill state.
func (m *Model) Drill() *domain.Drill {
	return m.drill
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.text.SetWidth(max(msg.Width-4, 10))
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.errMsg = ""
		if m.drill.Phase == domain.PhaseActive {
			return m.updateActive(msg)
		}
		return m.updateSetup(msg)
	}

	return m.forward(msg)
}

func (m *Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		if err := m.drill.Start(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.text.Blur()
		m.count.Blur()
		m.keys.active = true
		m.status = ""
		m.logger.Debug("drill started", "words", len(m.drill.Words), "removeCount", m.drill.RemoveCount)
		return m, nil
	case key.Matches(msg, m.keys.SwitchFocus):
		if m.focus == focusText {
			m.focusOn(focusCount)
		} else {
			m.focusOn(focusText)
		}
		return m, nil
	case key.Matches(msg, m.keys.Sample):
		m.setText(app.RandomPassageExcluding([]string{m.drill.Text}))
		return m, nil
	}

	return m.forward(msg)
}

func (m *Model) updateActive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Hide):
		added, err := m.drill.HideWords(m.rng)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if added == 0 {
			m.status = "Nothing left to remove"
		} else {
			m.status = fmt.Sprintf("Removed %d", added)
		}
		return m, nil
	case key.Matches(msg, m.keys.StartOver):
		m.drill.Reset()
		m.text.Reset()
		m.count.SetValue(fmt.Sprint(m.drill.RemoveCount))
		m.keys.active = false
		m.status = ""
		m.focusOn(focusText)
		return m, nil
	}
	return m, nil
}

// forward passes msg to the focused input and copies any edit into the drill
func (m *Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.drill.Phase != domain.PhaseSetup {
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusText {
		before := m.text.Value()
		m.text, cmd = m.text.Update(msg)
		if after := m.text.Value(); after != before && !m.applyText(after) {
			m.text.SetValue(before)
		}
		return m, cmd
	}

	before := m.count.Value()
	m.count, cmd = m.count.Update(msg)
	if after := m.count.Value(); after != before {
		m.applyCount(after)
	}
	return m, cmd
}

func (m *Model) setText(text string) {
	m.text.SetValue(text)
	if text != "" && !m.applyText(m.text.Value()) {
		m.text.SetValue(m.drill.Text)
	}
}

func (m *Model) setCount(raw string) {
	m.count.SetValue(raw)
	m.applyCount(m.count.Value())
}

// applyText copies text into the drill and reports whether it was accepted
func (m *Model) applyText(text string) bool {
	if err := m.drill.SetText(text); err != nil {
		m.errMsg = err.Error()
		return false
	}
	return true
}

func (m *Model) applyCount(raw string) {
	if _, err := m.drill.SetRemoveCount(raw); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) focusOn(target int) {
	m.focus = target
	if target == focusText {
		m.count.Blur()
		m.text.Focus()
		return
	}
	m.text.Blur()
	m.count.Focus()
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("recall"))
	b.WriteString("\n\n")

	if m.drill.Phase == domain.PhaseActive {
		b.WriteString(m.activeView())
	} else {
		b.WriteString(m.setupView())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) setupView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Text"))
	b.WriteString("\n")
	b.WriteString(m.text.View())
	b.WriteString("\n\n")
	b.WriteString(m.count.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d words, %d per step", len(m.drill.Words), m.drill.RemoveCount)))
	return b.String()
}

func (m *Model) activeView() string {
	var b strings.Builder

	snap := m.drill.Snapshot()
	lines := wrapWords(snap.Words, max(m.width-4, 10))
	b.WriteString(wordsStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	counts := fmt.Sprintf("%d of %d hidden", snap.HiddenCount, len(snap.Words))
	if snap.Complete {
		b.WriteString(doneStyle.Render(counts + ", all gone"))
	} else {
		b.WriteString(statusStyle.Render(counts))
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render("  " + m.status))
	}
	return b.String()
}

// blank covers a hidden word with spaces of its display width
func blank(word string) string {
	return strings.Repeat(" ", runewidth.StringWidth(word))
}

// wrapWords lays the word slots out in lines no wider than width. Each word
// is followed by one space; hidden words become blanks of the same display
// width so the rest of the text does not move.
func wrapWords(slots []domain.WordSlot, width int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, slot := range slots {
		cell := slot.Cell(blank)
		cellWidth := runewidth.StringWidth(cell)

		if lineWidth > 0 && lineWidth+cellWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteString(cell)
		lineWidth += cellWidth
	}

	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
