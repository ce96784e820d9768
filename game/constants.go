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

/*
 * TIMING
 */
const (
	// Menu loop pause between polls
	MenuDelay = 50 * time.Millisecond

	// Feedback for a level change
	StepPulse = 100 * time.Millisecond
	StepDelay = 100 * time.Millisecond

	// Start signal: buzzer on with the marker shown, then buzzer off and
	// blank, for each half cycle
	StartCycles    = 3
	StartHalfCycle = 400 * time.Millisecond
	StartMarker    = uint8(0)
	ExitPulse      = 500 * time.Millisecond

	// Round loop pause between joystick samples
	PollInterval = 50 * time.Millisecond

	// Outcome feedback. Both outcomes take WinPulse in total so the
	// length of the feedback gives nothing away.
	WinPulse   = 500 * time.Millisecond
	LosePulse  = 125 * time.Millisecond
	LoseHold   = WinPulse - LosePulse
	ClearDelay = 200 * time.Millisecond
)
