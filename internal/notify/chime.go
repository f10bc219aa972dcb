package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// Chime plays a short two-tone sound through the default audio device.
type Chime struct {
	tones    []float64
	toneTime time.Duration
	gain     float64

	initOnce sync.Once
	initErr  error
}

// NewChime returns a chime sender. The speaker is opened on first use.
func NewChime() *Chime {
	return &Chime{
		tones:    []float64{880, 660},
		toneTime: 180 * time.Millisecond,
		gain:     -0.6,
	}
}

func (chime *Chime) Name() string { return "chime" }

func (chime *Chime) Send(ctx context.Context, _, _ string) error {
	chime.initOnce.Do(func() {
		chime.initErr = speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
	})
	if chime.initErr != nil {
		return fmt.Errorf("init speaker: %w", chime.initErr)
	}

	streamers := make([]beep.Streamer, 0, len(chime.tones)+1)
	for _, frequency := range chime.tones {
		tone, err := generators.SineTone(chimeSampleRate, frequency)
		if err != nil {
			return fmt.Errorf("build %.0fHz tone: %w", frequency, err)
		}
		streamers = append(streamers, beep.Take(chimeSampleRate.N(chime.toneTime), tone))
	}

	done := make(chan struct{})
	streamers = append(streamers, beep.Callback(func() { close(done) }))
	speaker.Play(&effects.Gain{Streamer: beep.Seq(streamers...), Gain: chime.gain})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
