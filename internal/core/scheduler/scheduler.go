// Package scheduler holds the cycle state: which phase comes next and how
// many work phases were completed since the last long break.
//
// A Scheduler is not safe for concurrent use. The timekeeper serialises all
// calls behind its own lock.
package scheduler

import (
	"fmt"

	"workscheduler/internal/core/phase"
)

// Scheduler advances through a phase ring.
type Scheduler struct {
	cursor         *phase.Cursor
	workIterations int
}

// New connects phases into a ring and positions the scheduler on its head.
func New(phases []phase.Phase) (*Scheduler, error) {
	seq, err := phase.Connect(phases)
	if err != nil {
		return nil, fmt.Errorf("build scheduler: %w", err)
	}
	return &Scheduler{cursor: phase.NewCursor(seq)}, nil
}

// Activate returns the current phase and moves on to its successor.
// Work phases bump the iteration counter; a long break clears it. The clear
// runs after the bump, so a phase counting as both would leave zero.
func (sched *Scheduler) Activate() phase.Phase {
	activated := sched.cursor.Current()
	sched.cursor.Advance()

	if activated.Kind == phase.KindWork {
		sched.workIterations++
	}
	if activated.Kind == phase.KindLongBreak {
		sched.workIterations = 0
	}
	return activated
}

// Reset rewinds to the ring head and clears the counter. The returned phase
// is not activated; the next Activate returns it.
func (sched *Scheduler) Reset() phase.Phase {
	sched.workIterations = 0
	return sched.cursor.Rewind()
}

// Current returns the phase the next Activate will return.
func (sched *Scheduler) Current() phase.Phase {
	return sched.cursor.Current()
}

// Start returns the ring head.
func (sched *Scheduler) Start() phase.Phase {
	return sched.cursor.Sequence().Head()
}

// WorkIterations returns the number of work phases activated since the last
// long break, reset or construction.
func (sched *Scheduler) WorkIterations() int {
	return sched.workIterations
}

// Len returns the number of phases in the cycle.
func (sched *Scheduler) Len() int {
	return sched.cursor.Sequence().Len()
}

// Phases returns the cycle in construction order.
func (sched *Scheduler) Phases() []phase.Phase {
	return sched.cursor.Sequence().Phases()
}
