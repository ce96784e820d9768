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
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoLevels     = errors.New("level table is empty")
	ErrInvalidLevel = errors.New("invalid level")
)

// Level is one difficulty tier: how long the player has per round and how
// many rounds make up the level.
type Level struct {
	Timeout time.Duration
	Rounds  int
}

// Table is the ordered, read-only list of levels. It is indexed by
// Selection, which starts at 1.
type Table []Level

// DefaultLevels is the five-level table shipped on the device.
var DefaultLevels = Table{
	{Timeout: 5000 * time.Millisecond, Rounds: 10},
	{Timeout: 4000 * time.Millisecond, Rounds: 10},
	{Timeout: 3000 * time.Millisecond, Rounds: 15},
	{Timeout: 1000 * time.Millisecond, Rounds: 30},
	{Timeout: 500 * time.Millisecond, Rounds: 50},
}

// At returns the level for a 1-based selection. Selection wraps inside the
// table, so an out-of-range index is a programming error and panics.
func (t Table) At(s Selection) Level {
	return t[s-1]
}

// Len is the number of levels.
func (t Table) Len() int {
	return len(t)
}

// Validate returns an error describing the first problem that makes the
// table unplayable.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrNoLevels
	}

	// The menu shows the selection as a single digit
	if len(t) > 9 {
		return fmt.Errorf("%d levels do not fit on one digit: %w", len(t), ErrInvalidLevel)
	}

	for i, l := range t {
		if l.Rounds < 1 {
			return fmt.Errorf("level %d: %d rounds: %w", i+1, l.Rounds, ErrInvalidLevel)
		}
		if l.Timeout <= 0 {
			return fmt.Errorf("level %d: timeout %v: %w", i+1, l.Timeout, ErrInvalidLevel)
		}
	}

	return nil
}

// Selection is a 1-based, cyclic index into a Table.
type Selection int

// Next moves to the following level, wrapping from the last to the first.
func (s Selection) Next(n int) Selection {
	if int(s) >= n {
		return 1
	}
	return s + 1
}

// Prev moves to the preceding level, wrapping from the first to the last.
func (s Selection) Prev(n int) Selection {
	if s <= 1 {
		return Selection(n)
	}
	return s - 1
}
