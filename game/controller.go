/*
 * Reaction for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Config tunes a Controller. Zero fields take the device defaults.
type Config struct {
	Levels      Table
	Calibration Calibration
	Clock       Clock
	Rand        Rand
	Log         Logger
	Reporter    Reporter
}

// Controller is the session dispatcher. Each Tick hands control to the menu
// while idle, or to the round engine while a level is armed.
//
// A Controller is not safe for concurrent use; drive it from one goroutine.
type Controller struct {
	hw      Hardware
	cfg     Config
	session Session
	menu    *menu
	rounds  *roundEngine
}

// NewController validates the configuration and returns a controller in
// menu mode with level 1 selected.
func NewController(hw Hardware, cfg Config) (*Controller, error) {
	if hw.Display == nil || hw.X == nil || hw.Y == nil || hw.Button == nil ||
		hw.Buzzer == nil || hw.Indicator == nil {
		return nil, errors.New("incomplete hardware")
	}

	if cfg.Levels == nil {
		cfg.Levels = DefaultLevels
	}
	if err := cfg.Levels.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if cfg.Calibration == (Calibration{}) {
		cfg.Calibration = Calibration10Bit
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Log == nil {
		cfg.Log = nopLogger{}
	}

	c := &Controller{
		hw:  hw,
		cfg: cfg,
		session: Session{
			Mode:      ModeMenu,
			Selection: 1,
		},
	}
	c.menu = &menu{hw: hw, cfg: &c.cfg, s: &c.session}
	c.rounds = &roundEngine{hw: hw, cfg: &c.cfg, s: &c.session, menu: c.menu}

	return c, nil
}

// Tick runs one step of whichever state owns the session.
func (c *Controller) Tick() {
	if c.session.Mode == ModeMenu {
		c.menu.tick()
	} else {
		c.rounds.tick()
	}
}

// Run ticks until ctx is cancelled. A blocking pulse in progress always
// finishes before Run notices.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.Tick()
	}
}

// Session returns a snapshot of the game state.
func (c *Controller) Session() Session {
	return c.session
}

// Level returns the currently selected level.
func (c *Controller) Level() Level {
	return c.cfg.Levels.At(c.session.Selection)
}

// Levels returns the level table in use.
func (c *Controller) Levels() Table {
	return c.cfg.Levels
}
