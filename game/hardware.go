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

// Blank is the digit value that turns every segment off.
const Blank uint8 = 10

// Display renders a digit (0-9, or Blank) or a single direction segment
// (0 up, 1 down, 2 right, 3 left).
type Display interface {
	ShowDigit(d uint8)
	ShowSegment(i uint8)
}

// Axis is one joystick potentiometer. machine.ADC satisfies it.
type Axis interface {
	Get() uint16
}

// Switch is a digital input. It is active-low: Get returns false while
// the button is held. machine.Pin satisfies it.
type Switch interface {
	Get() bool
}

// Actuator is an on/off output such as a buzzer or an LED.
// machine.Pin satisfies it.
type Actuator interface {
	Set(on bool)
}

// Clock is the controller's only source of time. Every delay in the game
// goes through Sleep so that tests can run on a virtual clock.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Rand picks the round targets. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Logger receives the game trace. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Reporter is told about every scored round.
type Reporter interface {
	RoundFinished(o Outcome)
}

// Hardware bundles the collaborators the controller drives.
type Hardware struct {
	Display   Display
	X         Axis
	Y         Axis
	Button    Switch
	Buzzer    Actuator
	Indicator Actuator
}

// SystemClock reads the wall clock and blocks with time.Sleep.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// pulse drives an actuator for d, then releases it. It blocks and cannot
// be interrupted.
func pulse(clock Clock, a Actuator, d time.Duration) {
	a.Set(true)
	clock.Sleep(d)
	a.Set(false)
}
