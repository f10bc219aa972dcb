package term

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workscheduler/internal/core/phase"
	"workscheduler/internal/core/timekeeper"
)

type fakeController struct {
	starts int
	resets int
}

func (controller *fakeController) Start() bool {
	controller.starts++
	return controller.starts == 1
}

func (controller *fakeController) Reset() phase.Phase {
	controller.resets++
	return phase.Work(time.Minute)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeysDriveController(t *testing.T) {
	controller := &fakeController{}
	model := New(controller, make(chan timekeeper.Event), timekeeper.Event{})

	updated, cmd := model.Update(runeKey('s'))
	assert.Nil(t, cmd)
	updated, _ = updated.Update(runeKey('r'))
	updated.Update(runeKey('x'))

	assert.Equal(t, 1, controller.starts)
	assert.Equal(t, 1, controller.resets)
}

func TestQuitKey(t *testing.T) {
	model := New(&fakeController{}, make(chan timekeeper.Event), timekeeper.Event{})

	updated, cmd := model.Update(runeKey('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, updated.View())
}

func TestEventUpdatesView(t *testing.T) {
	events := make(chan timekeeper.Event, 1)
	model := New(&fakeController{}, events, timekeeper.Event{})
	assert.Contains(t, model.View(), "Timer")
	assert.Contains(t, model.View(), "Nope")

	updated, cmd := model.Update(eventMsg(timekeeper.Event{
		Type:           timekeeper.EventTick,
		Phase:          phase.ShortBreak(5 * time.Minute),
		Remaining:      125,
		Display:        "02:05",
		WorkIterations: 2,
		Running:        true,
	}))
	require.NotNil(t, cmd)

	view := updated.View()
	assert.Contains(t, view, "Short break")
	assert.Contains(t, view, "02:05")
	assert.Contains(t, view, "+ +")

	events <- timekeeper.Event{Type: timekeeper.EventReset}
	msg := cmd()
	assert.Equal(t, eventMsg(timekeeper.Event{Type: timekeeper.EventReset}), msg)

	updated, _ = updated.Update(msg)
	assert.Contains(t, updated.View(), "Timer")
	assert.Contains(t, updated.View(), "00:00")
}

func TestClosedEventsQuit(t *testing.T) {
	events := make(chan timekeeper.Event)
	close(events)
	model := New(&fakeController{}, events, timekeeper.Event{})

	msg := model.Init()()
	assert.Equal(t, closedMsg{}, msg)

	_, cmd := model.Update(msg)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWindowSizeClampsBar(t *testing.T) {
	model := New(&fakeController{}, make(chan timekeeper.Event), timekeeper.Event{})

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 400, Height: 40})
	assert.Equal(t, maxBarWidth, updated.(Model).bar.Width)

	updated, _ = model.Update(tea.WindowSizeMsg{Width: 5, Height: 40})
	assert.Equal(t, 10, updated.(Model).bar.Width)
}
