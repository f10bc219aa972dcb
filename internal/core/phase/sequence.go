package phase

import "fmt"

// Sequence is a fixed ring of phases. The successor of the last phase is the
// first one.
type Sequence struct {
	phases []Phase
}

// Connect closes phases into a ring. The first phase is the ring head.
func Connect(phases []Phase) (*Sequence, error) {
	if len(phases) == 0 {
		return nil, fmt.Errorf("%w: sequence must contain at least one phase", ErrConfiguration)
	}
	for index, phase := range phases {
		if err := phase.validate(index); err != nil {
			return nil, err
		}
	}
	ring := make([]Phase, len(phases))
	copy(ring, phases)
	return &Sequence{phases: ring}, nil
}

// Len returns the number of phases in the ring.
func (seq *Sequence) Len() int {
	return len(seq.phases)
}

// Head returns the entry point of the ring.
func (seq *Sequence) Head() Phase {
	return seq.phases[0]
}

// At returns the phase at index, wrapping around the ring.
func (seq *Sequence) At(index int) Phase {
	return seq.phases[seq.wrap(index)]
}

// Next returns the index following index.
func (seq *Sequence) Next(index int) int {
	return seq.wrap(index + 1)
}

// Phases returns a copy of the ring in construction order.
func (seq *Sequence) Phases() []Phase {
	out := make([]Phase, len(seq.phases))
	copy(out, seq.phases)
	return out
}

// ZeroDurationChain reports whether two adjacent phases of the ring (or the
// only phase) have no duration. Such a ring re-activates continuously
// without ever waiting on the tick source.
func (seq *Sequence) ZeroDurationChain() bool {
	for index, phase := range seq.phases {
		if phase.DurationSeconds == 0 && seq.At(seq.Next(index)).DurationSeconds == 0 {
			return true
		}
	}
	return false
}

func (seq *Sequence) wrap(index int) int {
	size := len(seq.phases)
	index %= size
	if index < 0 {
		index += size
	}
	return index
}

// Cursor walks a Sequence.
type Cursor struct {
	seq   *Sequence
	index int
}

// NewCursor returns a cursor positioned at the ring head.
func NewCursor(seq *Sequence) *Cursor {
	return &Cursor{seq: seq}
}

// Current returns the phase under the cursor.
func (cursor *Cursor) Current() Phase {
	return cursor.seq.At(cursor.index)
}

// Advance moves to the successor and returns it.
func (cursor *Cursor) Advance() Phase {
	cursor.index = cursor.seq.Next(cursor.index)
	return cursor.Current()
}

// Rewind moves back to the ring head and returns it.
func (cursor *Cursor) Rewind() Phase {
	cursor.index = 0
	return cursor.Current()
}

// Index returns the cursor position.
func (cursor *Cursor) Index() int {
	return cursor.index
}

// Sequence returns the ring being walked.
func (cursor *Cursor) Sequence() *Sequence {
	return cursor.seq
}
