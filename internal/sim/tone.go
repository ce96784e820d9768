package sim

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Tone is the buzzer's voice: a steady sine that is paused while the
// buzzer is off.
type Tone struct {
	ctrl *beep.Ctrl
}

// NewTone opens the speaker and starts the (paused) tone.
func NewTone(cfg Config) (*Tone, error) {
	sr := beep.SampleRate(cfg.SampleRate)

	t, err := newTone(sr, cfg.ToneHz, cfg.Volume)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(t.ctrl)

	return t, nil
}

func newTone(sr beep.SampleRate, hz, volume float64) (*Tone, error) {
	sine, err := generators.SineTone(sr, hz)
	if err != nil {
		return nil, fmt.Errorf("tone %vHz: %w", hz, err)
	}

	streamer := &effects.Volume{
		Streamer: sine,
		Base:     2,
		Volume:   volume,
	}

	return &Tone{ctrl: &beep.Ctrl{Streamer: streamer, Paused: true}}, nil
}

// Set starts or silences the tone.
func (t *Tone) Set(on bool) {
	speaker.Lock()
	t.ctrl.Paused = !on
	speaker.Unlock()
}

// Close silences the tone and releases the speaker.
func (t *Tone) Close() {
	t.Set(false)
	speaker.Clear()
	speaker.Close()
}
