// Package term is the terminal front-end: a bubbletea model that renders
// timekeeper events and forwards key presses to the timekeeper.
package term

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workscheduler/internal/core/phase"
	"workscheduler/internal/core/timekeeper"
	"workscheduler/internal/ui/style"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 80
)

var (
	timerStyle = lipgloss.NewStyle().Bold(true).Padding(1, 0)
	marksStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(style.Red))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 4)
)

// Controller is the part of the timekeeper the terminal drives.
type Controller interface {
	Start() bool
	Reset() phase.Phase
}

type eventMsg timekeeper.Event

type closedMsg struct{}

type keyMap struct {
	Start key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Start, keys.Reset, keys.Quit}
}

func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{keys.ShortHelp()}
}

func defaultKeys() keyMap {
	return keyMap{
		Start: key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "start")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the bubbletea model of the terminal timer.
type Model struct {
	controller Controller
	events     <-chan timekeeper.Event
	state      timekeeper.Event
	keys       keyMap
	help       help.Model
	bar        progress.Model
	quitting   bool
}

// New returns a model rendering initial until the first event arrives.
func New(controller Controller, events <-chan timekeeper.Event, initial timekeeper.Event) Model {
	return Model{
		controller: controller,
		events:     events,
		state:      initial,
		keys:       defaultKeys(),
		help:       help.New(),
		bar:        progress.New(progress.WithSolidFill(style.Green), progress.WithWidth(defaultBarWidth)),
	}
}

// Init waits for the first timekeeper event.
func (model Model) Init() tea.Cmd {
	return waitForEvent(model.events)
}

// Update handles timekeeper events and key presses.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		model.state = timekeeper.Event(msg)
		return model, waitForEvent(model.events)
	case closedMsg:
		model.quitting = true
		return model, tea.Quit
	case tea.WindowSizeMsg:
		model.bar.Width = min(max(msg.Width-12, 10), maxBarWidth)
		model.help.Width = msg.Width
		return model, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, model.keys.Quit):
			model.quitting = true
			return model, tea.Quit
		case key.Matches(msg, model.keys.Start):
			model.controller.Start()
		case key.Matches(msg, model.keys.Reset):
			model.controller.Reset()
		}
	}
	return model, nil
}

// View renders the current state.
func (model Model) View() string {
	if model.quitting {
		return ""
	}

	title := style.IdleTitle
	colour := style.Green
	display := timekeeper.FormatRemaining(0)
	marks := style.IdleMarks
	if model.state.Running {
		title = model.state.Phase.Label
		colour = style.ColorHex(model.state.Phase.Kind)
		display = model.state.Display
		marks = style.Marks(model.state.WorkIterations)
	}

	bar := model.bar
	bar.FullColor = colour

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colour)).Render(title),
		timerStyle.Render(display),
		bar.ViewAs(model.state.Progress()),
		marksStyle.Render(marks),
	}
	body := frameStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return strings.Join([]string{body, model.help.View(model.keys)}, "\n")
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}
