package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the simulator configuration, read from the environment.
type Config struct {
	// Audio plays the buzzer through the sound card
	Audio      bool    `env:"REACTION_SIM_AUDIO" envDefault:"true"`
	ToneHz     float64 `env:"REACTION_SIM_TONE_HZ" envDefault:"2000"`
	Volume     float64 `env:"REACTION_SIM_VOLUME" envDefault:"-1"`
	SampleRate int     `env:"REACTION_SIM_SAMPLE_RATE" envDefault:"44100"`

	// Hold is how long one key press keeps the stick deflected or the
	// button down. Terminals report no key releases.
	Hold time.Duration `env:"REACTION_SIM_HOLD" envDefault:"250ms"`

	// Seed fixes the target sequence; zero seeds from the clock
	Seed int64 `env:"REACTION_SIM_SEED"`

	// LogPath receives the game trace; empty discards it
	LogPath string `env:"REACTION_SIM_LOG"`
}

// LoadConfig parses and checks the simulator configuration.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulator cannot run with.
func (c Config) Validate() error {
	if c.Hold <= 0 {
		return errors.New("REACTION_SIM_HOLD must be positive")
	}
	if c.SampleRate <= 0 {
		return errors.New("REACTION_SIM_SAMPLE_RATE must be positive")
	}
	if c.ToneHz <= 0 || c.ToneHz >= float64(c.SampleRate)/2 {
		return fmt.Errorf("REACTION_SIM_TONE_HZ %v outside (0, %d)", c.ToneHz, c.SampleRate/2)
	}
	return nil
}
