package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt-sim/internal/platform"
)

// TickMsg is sent to trigger an autoplay spin step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	loopStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Model is the Bubble Tea model for watching spin cycles on a platform.
type Model struct {
	start   platform.Grid
	current platform.Grid
	cycle   int // spin cycles applied so far

	// Recurrence tracking mirrors SpinN: seen maps grid snapshots to the
	// cycle after which they first appeared.
	seen      map[string]int
	loopStart int
	period    int

	autoplay bool
	tickRate int
	styled   bool

	keys     WatchKeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a watch model for the given starting grid.
func NewModel(start platform.Grid, tickRate int, styled bool, width, height int) Model {
	if tickRate <= 0 {
		tickRate = 10
	}

	m := Model{
		start:    start,
		tickRate: tickRate,
		styled:   styled,
		keys:     DefaultWatchKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.reset()
	return m
}

// reset rewinds the session to the starting grid.
func (m *Model) reset() {
	m.current = m.start.Clone()
	m.cycle = 0
	m.seen = map[string]int{m.start.Key(): 0}
	m.loopStart = 0
	m.period = 0
	m.autoplay = false
}

// step applies one spin cycle and updates recurrence tracking.
func (m *Model) step() {
	m.current = platform.Spin(m.current)
	m.cycle++

	if m.period > 0 {
		return
	}
	if first, ok := m.seen[m.current.Key()]; ok {
		m.loopStart = first
		m.period = m.cycle - first
		m.autoplay = false
		return
	}
	m.seen[m.current.Key()] = m.cycle
}

// Init starts the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Step):
			m.step()
			return m, nil
		case key.Matches(msg, m.keys.Autoplay):
			m.autoplay = !m.autoplay
			if m.autoplay {
				return m, tickCmd(m.tickRate)
			}
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.autoplay {
			return m, nil
		}
		m.step()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// View renders the watch screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	header := fmt.Sprintf("cycle %d  load %d", m.cycle, platform.Load(m.current))
	if m.autoplay {
		header += "  [autoplay]"
	}
	sb.WriteString(headerStyle.Render(header))
	sb.WriteRune('\n')

	if m.period > 0 {
		sb.WriteString(loopStyle.Render(
			fmt.Sprintf("loop detected: period %d, first seen after cycle %d", m.period, m.loopStart)))
		sb.WriteRune('\n')
	}

	sb.WriteString(frameStyle.Render(RenderGrid(m.current, m.styled)))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}
