package timekeeper

import (
	"fmt"
	"time"

	"workscheduler/internal/core/phase"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventPhaseStart EventType = "phase_start"
	EventTick       EventType = "tick"
	EventReset      EventType = "reset"
	EventSnapshot   EventType = "snapshot"
)

// Event represents a TimeKeeper update for observers. Every event carries
// the full display state.
type Event struct {
	Type           EventType
	Phase          phase.Phase
	Remaining      int
	Display        string
	WorkIterations int
	Running        bool
	Message        string
	At             time.Time
}

// Progress returns the elapsed fraction of the phase in [0, 1].
func (event Event) Progress() float64 {
	total := event.Phase.DurationSeconds
	if !event.Running {
		return 0
	}
	if total <= 0 {
		return 1
	}
	progress := float64(total-event.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// FormatRemaining renders seconds as MM:SS.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
