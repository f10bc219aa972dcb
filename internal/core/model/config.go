package model

import (
	"fmt"
	"time"

	"workscheduler/internal/core/phase"
)

// PhaseConfig defines one configured step of the cycle.
type PhaseConfig struct {
	Kind     phase.Kind
	Label    string
	Duration time.Duration
}

// NotifyConfig selects notification channels.
type NotifyConfig struct {
	Title         string
	Desktop       bool
	Chime         bool
	Console       bool
	RatePerSecond float64
	Burst         int
	QueueSize     int
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level   string
	Console bool
	File    string
}

// Settings is the full application configuration. It is read once at start.
type Settings struct {
	Phases       []PhaseConfig
	TickInterval time.Duration
	Notify       NotifyConfig
	Log          LogConfig
}

// DefaultPhases returns the stock cycle: five work phases separated by short
// breaks, closed by a long break.
func DefaultPhases() []PhaseConfig {
	work := PhaseConfig{Kind: phase.KindWork, Duration: phase.DefaultWork}
	short := PhaseConfig{Kind: phase.KindShortBreak, Duration: phase.DefaultShortBreak}
	long := PhaseConfig{Kind: phase.KindLongBreak, Duration: phase.DefaultLongBreak}
	return []PhaseConfig{work, short, work, short, work, short, work, short, work, long}
}

// DefaultSettings returns default settings.
func DefaultSettings() Settings {
	return Settings{
		Phases:       DefaultPhases(),
		TickInterval: time.Second,
		Notify: NotifyConfig{
			Title:         "Work Scheduler",
			Desktop:       true,
			Chime:         false,
			Console:       true,
			RatePerSecond: 2,
			Burst:         4,
			QueueSize:     32,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// PhaseList converts the configured phases to core phases.
func (settings Settings) PhaseList() ([]phase.Phase, error) {
	phases := make([]phase.Phase, 0, len(settings.Phases))
	for index, cfg := range settings.Phases {
		if !cfg.Kind.Valid() {
			return nil, fmt.Errorf("%w: phases[%d]: unknown kind %q", phase.ErrConfiguration, index, cfg.Kind)
		}
		if cfg.Duration < 0 {
			return nil, fmt.Errorf("%w: phases[%d]: negative duration %s", phase.ErrConfiguration, index, cfg.Duration)
		}
		phases = append(phases, phase.New(cfg.Kind, cfg.Label, cfg.Duration))
	}
	return phases, nil
}
