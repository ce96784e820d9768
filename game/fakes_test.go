package game

import (
	"fmt"
	"time"
)

// fakeClock is a virtual clock: Sleep moves time forward instantly.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeDisplay records every call as "digit N" or "segment N".
type fakeDisplay struct {
	calls []string
}

func (d *fakeDisplay) ShowDigit(v uint8) { d.calls = append(d.calls, fmt.Sprintf("digit %d", v)) }

func (d *fakeDisplay) ShowSegment(i uint8) { d.calls = append(d.calls, fmt.Sprintf("segment %d", i)) }

func (d *fakeDisplay) last() string {
	if len(d.calls) == 0 {
		return ""
	}
	return d.calls[len(d.calls)-1]
}

func (d *fakeDisplay) reset() { d.calls = nil }

// fakeAxis holds a fixed raw reading.
type fakeAxis struct {
	value uint16
}

func (a *fakeAxis) Get() uint16 { return a.value }

// fakeButton is active-low: held means Get returns false.
type fakeButton struct {
	held bool
}

func (b *fakeButton) Get() bool { return !b.held }

// fakeActuator records switch-on times and total on time.
type fakeActuator struct {
	clock  *fakeClock
	on     bool
	since  time.Time
	pulses []time.Duration
}

func (a *fakeActuator) Set(on bool) {
	if on && !a.on {
		a.since = a.clock.Now()
	}
	if !on && a.on {
		a.pulses = append(a.pulses, a.clock.Now().Sub(a.since))
	}
	a.on = on
}

// fixedRand returns the queued values in order, then repeats the last.
type fixedRand struct {
	values []int
}

func (r *fixedRand) Intn(n int) int {
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v % n
}

type recordingReporter struct {
	outcomes []Outcome
}

func (r *recordingReporter) RoundFinished(o Outcome) { r.outcomes = append(r.outcomes, o) }

// rig is a controller wired to fakes, centred stick, button released.
type rig struct {
	clock     *fakeClock
	display   *fakeDisplay
	x, y      *fakeAxis
	button    *fakeButton
	buzzer    *fakeActuator
	indicator *fakeActuator
	rand      *fixedRand
	reporter  *recordingReporter
	ctrl      *Controller
}

func newRig(levels Table, targets ...int) *rig {
	clock := newFakeClock()
	if len(targets) == 0 {
		targets = []int{int(SegmentUp)}
	}

	r := &rig{
		clock:     clock,
		display:   &fakeDisplay{},
		x:         &fakeAxis{value: 512},
		y:         &fakeAxis{value: 512},
		button:    &fakeButton{},
		buzzer:    &fakeActuator{clock: clock},
		indicator: &fakeActuator{clock: clock},
		rand:      &fixedRand{values: targets},
		reporter:  &recordingReporter{},
	}

	ctrl, err := NewController(Hardware{
		Display:   r.display,
		X:         r.x,
		Y:         r.y,
		Button:    r.button,
		Buzzer:    r.buzzer,
		Indicator: r.indicator,
	}, Config{
		Levels:   levels,
		Clock:    clock,
		Rand:     r.rand,
		Reporter: r.reporter,
	})
	if err != nil {
		panic(err)
	}
	r.ctrl = ctrl

	return r
}

// centre puts the stick back at rest.
func (r *rig) centre() {
	r.x.value = 512
	r.y.value = 512
}

// push deflects the stick fully in direction d.
func (r *rig) push(d Direction) {
	r.centre()
	switch d {
	case Up:
		r.y.value = 0
	case Down:
		r.y.value = 1023
	case Left:
		r.x.value = 0
	case Right:
		r.x.value = 1023
	}
}

// press clicks the button across one tick.
func (r *rig) press() {
	r.button.held = true
	r.ctrl.Tick()
	r.button.held = false
}

// arm starts the selected level from the menu.
func (r *rig) arm() {
	if r.ctrl.Session().Mode != ModeMenu {
		panic("arm outside the menu")
	}
	if r.ctrl.session.pressed {
		// Let the controller see the release of the previous press
		r.ctrl.Tick()
	}
	r.press()
}
