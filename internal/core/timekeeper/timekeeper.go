package timekeeper

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"workscheduler/internal/core/phase"
	"workscheduler/internal/core/scheduler"
)

// DefaultStopMessage is sent to the notifier when Reset stops a running cycle.
const DefaultStopMessage = "Working circle was stopped"

// Notifier receives one message per phase activation and one per stopped
// cycle. Notify is called with the TimeKeeper lock held, so it must not
// block or call back into the TimeKeeper.
type Notifier interface {
	Notify(message string)
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
	Notifier     Notifier
	StopMessage  string
	Logger       zerolog.Logger
}

type step int

const (
	stepTick step = iota
	stepExhausted
)

// TimeKeeper drives a Scheduler: it counts each activated phase down one
// tick at a time and activates the successor when the count reaches zero.
type TimeKeeper struct {
	mu         sync.Mutex
	scheduler  *scheduler.Scheduler
	options    Config
	log        zerolog.Logger
	phase      phase.Phase
	remaining  int
	pending    Timer
	generation uint64
	running    bool
	stopped    bool
	events     []chan Event
}

// New creates a TimeKeeper around sched. The cycle does not run until Start.
func New(sched *scheduler.Scheduler, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.Notifier == nil {
		options.Notifier = nopNotifier{}
	}
	if options.StopMessage == "" {
		options.StopMessage = DefaultStopMessage
	}

	return &TimeKeeper{
		scheduler: sched,
		options:   options,
		log:       options.Logger.With().Str("component", "timekeeper").Logger(),
		phase:     sched.Current(),
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.stopped {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Start activates the next phase and begins its countdown. It does nothing
// and returns false while a countdown is already running.
func (keeper *TimeKeeper) Start() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running || keeper.stopped {
		return false
	}
	keeper.running = true
	keeper.activateLocked()
	return true
}

// Reset cancels the pending tick and rewinds the cycle to its first phase.
// The stop message is only sent when a countdown was actually running.
func (keeper *TimeKeeper) Reset() phase.Phase {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	wasRunning := keeper.running
	keeper.cancelLocked()
	keeper.running = false

	head := keeper.scheduler.Reset()
	keeper.phase = head
	keeper.remaining = 0

	if wasRunning {
		keeper.log.Info().Msg("cycle stopped")
		keeper.options.Notifier.Notify(keeper.options.StopMessage)
	}
	keeper.emitLocked(keeper.eventLocked(EventReset, keeper.options.StopMessage))
	return head
}

// Stop terminates the countdown and closes observers. The TimeKeeper cannot
// be started again afterwards.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.cancelLocked()
	keeper.running = false
	keeper.stopped = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current display state.
func (keeper *TimeKeeper) Snapshot() Event {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.eventLocked(EventSnapshot, "")
}

// Running reports whether a countdown is in progress.
func (keeper *TimeKeeper) Running() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.running
}

func (keeper *TimeKeeper) activateLocked() {
	activated := keeper.scheduler.Activate()
	keeper.phase = activated
	keeper.remaining = activated.DurationSeconds

	keeper.log.Info().
		Str("phase", string(activated.Kind)).
		Str("label", activated.Label).
		Int("duration_seconds", activated.DurationSeconds).
		Int("work_iterations", keeper.scheduler.WorkIterations()).
		Msg("phase started")

	keeper.options.Notifier.Notify(activated.Label)
	keeper.emitLocked(keeper.eventLocked(EventPhaseStart, activated.Label))
	keeper.countDownLocked()
}

// countDownLocked renders the remaining time and schedules the next step:
// another tick while time is left, or the activation of the successor once
// the countdown is exhausted. The activation goes through the clock as its
// own step so chains of zero-length phases never recurse.
func (keeper *TimeKeeper) countDownLocked() {
	keeper.emitLocked(keeper.eventLocked(EventTick, ""))

	next := stepTick
	delay := keeper.options.TickInterval
	if keeper.remaining <= 0 {
		next = stepExhausted
		delay = 0
	}

	keeper.generation++
	generation := keeper.generation
	keeper.pending = keeper.options.Clock.AfterFunc(delay, func() {
		keeper.fire(generation, next)
	})
}

func (keeper *TimeKeeper) fire(generation uint64, next step) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running || generation != keeper.generation {
		keeper.log.Debug().Uint64("generation", generation).Msg("stale tick ignored")
		return
	}
	keeper.pending = nil

	switch next {
	case stepTick:
		keeper.remaining--
		keeper.countDownLocked()
	case stepExhausted:
		keeper.activateLocked()
	}
}

func (keeper *TimeKeeper) cancelLocked() {
	if keeper.pending != nil {
		keeper.pending.Stop()
		keeper.pending = nil
	}
	keeper.generation++
}

func (keeper *TimeKeeper) eventLocked(eventType EventType, message string) Event {
	return Event{
		Type:           eventType,
		Phase:          keeper.phase,
		Remaining:      keeper.remaining,
		Display:        FormatRemaining(keeper.remaining),
		WorkIterations: keeper.scheduler.WorkIterations(),
		Running:        keeper.running,
		Message:        message,
		At:             keeper.options.Clock.Now(),
	}
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}
