package tray

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workscheduler/internal/core/phase"
	"workscheduler/internal/core/timekeeper"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		name  string
		event timekeeper.Event
		want  string
	}{
		{name: "idle", event: timekeeper.Event{Phase: phase.Work(time.Minute)}, want: "idle"},
		{
			name:  "first work",
			event: timekeeper.Event{Phase: phase.Work(time.Minute), Display: "24:13", WorkIterations: 1, Running: true},
			want:  "Working 24:13 (+)",
		},
		{
			name:  "long break clears marks",
			event: timekeeper.Event{Phase: phase.LongBreak(time.Minute), Display: "19:59", Running: true},
			want:  "Long break 19:59",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusText(tt.event))
		})
	}
}

func TestApplyTogglesMenuItems(t *testing.T) {
	started := false
	manager := New(nil, Callbacks{OnStart: func() { started = true }})
	assert.False(t, manager.startItem.Disabled)
	assert.True(t, manager.resetItem.Disabled)

	manager.applyUnsafe(timekeeper.Event{Phase: phase.ShortBreak(time.Minute), Display: "04:59", WorkIterations: 2, Running: true})
	assert.Equal(t, "Status: Short break 04:59 (+ +)", manager.statusItem.Label)
	assert.True(t, manager.startItem.Disabled)
	assert.False(t, manager.resetItem.Disabled)

	manager.applyUnsafe(timekeeper.Event{Type: timekeeper.EventReset})
	assert.Equal(t, "Status: idle", manager.statusItem.Label)
	assert.False(t, manager.startItem.Disabled)

	manager.startItem.Action()
	assert.True(t, started)
}
