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
	"time"
)

// Mode selects which of the menu or the round engine owns the tick.
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeInLevel
)

func (m Mode) String() string {
	if m == ModeInLevel {
		return "level"
	}
	return "menu"
}

// Session is all mutable game state. It is owned by a Controller and
// written by exactly one of the menu or the round engine per tick.
type Session struct {
	Mode      Mode
	Selection Selection
	// Rounds counts the rounds started in the current level
	Rounds int
	// Hits and Misses tally scored rounds since power-on
	Hits   int
	Misses int

	// Menu debouncer: set once a vertical move has changed the selection,
	// cleared when the stick is back in the neutral band
	moved bool

	// Last sampled button state, for falling-edge detection
	pressed bool

	round round
}

// InRound reports whether a round is waiting for the player.
func (s Session) InRound() bool {
	return s.round.active
}

type round struct {
	active bool
	start  time.Time
	target Direction
}

// Outcome is the result of one scored round.
type Outcome struct {
	Level    Selection
	Round    int
	Target   Direction
	Observed Direction
	Correct  bool
}

// TimedOut reports whether the round ended without any gesture.
func (o Outcome) TimedOut() bool {
	return o.Observed == None
}
