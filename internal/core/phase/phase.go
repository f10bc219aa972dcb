package phase

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrConfiguration marks an invalid phase setup. The scheduler refuses to
// start when it sees one.
var ErrConfiguration = errors.New("invalid phase configuration")

// Kind identifies the role of a phase in the cycle.
type Kind string

const (
	KindWork       Kind = "work"
	KindShortBreak Kind = "short_break"
	KindLongBreak  Kind = "long_break"
)

// Default durations for the stock phase constructors.
const (
	DefaultWork       = 25 * time.Minute
	DefaultShortBreak = 5 * time.Minute
	DefaultLongBreak  = 20 * time.Minute
)

// Valid reports whether kind is one of the known kinds.
func (kind Kind) Valid() bool {
	switch kind {
	case KindWork, KindShortBreak, KindLongBreak:
		return true
	}
	return false
}

// DefaultLabel returns the title shown for a phase of this kind when no
// label was configured.
func (kind Kind) DefaultLabel() string {
	switch kind {
	case KindWork:
		return "Working"
	case KindShortBreak:
		return "Short break"
	case KindLongBreak:
		return "Long break"
	}
	return string(kind)
}

// ParseKind converts a configuration value to a Kind.
func ParseKind(value string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	switch normalized {
	case "work", "working":
		return KindWork, nil
	case "short_break", "break", "short":
		return KindShortBreak, nil
	case "long_break", "long":
		return KindLongBreak, nil
	}
	return "", fmt.Errorf("%w: unknown phase kind %q", ErrConfiguration, value)
}

// Phase is a single step of the cycle.
type Phase struct {
	Kind            Kind
	Label           string
	DurationSeconds int
}

// New builds a phase, falling back to the kind's default label.
func New(kind Kind, label string, duration time.Duration) Phase {
	if strings.TrimSpace(label) == "" {
		label = kind.DefaultLabel()
	}
	return Phase{
		Kind:            kind,
		Label:           label,
		DurationSeconds: int(duration / time.Second),
	}
}

// Work returns a work phase lasting duration.
func Work(duration time.Duration) Phase {
	return New(KindWork, "", duration)
}

// ShortBreak returns a short break lasting duration.
func ShortBreak(duration time.Duration) Phase {
	return New(KindShortBreak, "", duration)
}

// LongBreak returns a long break lasting duration.
func LongBreak(duration time.Duration) Phase {
	return New(KindLongBreak, "", duration)
}

// Duration returns the countdown length.
func (phase Phase) Duration() time.Duration {
	return time.Duration(phase.DurationSeconds) * time.Second
}

func (phase Phase) String() string {
	return fmt.Sprintf("%s (%s, %s)", phase.Label, phase.Kind, phase.Duration())
}

func (phase Phase) validate(index int) error {
	if !phase.Kind.Valid() {
		return fmt.Errorf("%w: phase %d has unknown kind %q", ErrConfiguration, index, phase.Kind)
	}
	if phase.DurationSeconds < 0 {
		return fmt.Errorf("%w: phase %d has negative duration %ds", ErrConfiguration, index, phase.DurationSeconds)
	}
	return nil
}
