package sim

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"reaction/game"
)

// Joystick turns key presses into analog stick readings and a button.
//
// A terminal only reports key downs, so each press deflects the stick (or
// holds the button) for a fixed time and auto-repeat keeps it there.
type Joystick struct {
	mu    sync.Mutex
	clock game.Clock
	cal   game.Calibration
	hold  time.Duration

	direction  game.Direction
	moveUntil  time.Time
	pressUntil time.Time
}

// NewJoystick returns a centred stick reading through cal's range.
func NewJoystick(clock game.Clock, cal game.Calibration, hold time.Duration) *Joystick {
	return &Joystick{clock: clock, cal: cal, hold: hold}
}

// HandleKey applies a key event and reports whether the joystick used it.
// Arrows, hjkl and wasd move the stick; space and enter press the button.
func (j *Joystick) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		j.Push(game.Up)
	case tcell.KeyDown:
		j.Push(game.Down)
	case tcell.KeyLeft:
		j.Push(game.Left)
	case tcell.KeyRight:
		j.Push(game.Right)
	case tcell.KeyEnter:
		j.Press()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			j.Push(game.Up)
		case 'j', 's':
			j.Push(game.Down)
		case 'h', 'a':
			j.Push(game.Left)
		case 'l', 'd':
			j.Push(game.Right)
		case ' ':
			j.Press()
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Push deflects the stick fully toward d.
func (j *Joystick) Push(d game.Direction) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.direction = d
	j.moveUntil = j.clock.Now().Add(j.hold)
}

// Press holds the button down.
func (j *Joystick) Press() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.pressUntil = j.clock.Now().Add(j.hold)
}

// Direction is where the stick currently points.
func (j *Joystick) Direction() game.Direction {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.current()
}

func (j *Joystick) current() game.Direction {
	if !j.clock.Now().Before(j.moveUntil) {
		return game.None
	}
	return j.direction
}

func (j *Joystick) read(horizontal bool) uint16 {
	j.mu.Lock()
	defer j.mu.Unlock()

	value := j.cal.Center
	switch d := j.current(); {
	case horizontal && d == game.Right, !horizontal && d == game.Down:
		value = j.cal.Max
	case horizontal && d == game.Left, !horizontal && d == game.Up:
		value = 0
	}
	return uint16(value)
}

func (j *Joystick) pressed() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.clock.Now().Before(j.pressUntil)
}

// X is the horizontal axis.
func (j *Joystick) X() game.Axis { return axis{j, true} }

// Y is the vertical axis. Up reads low.
func (j *Joystick) Y() game.Axis { return axis{j, false} }

// Button is the stick's push switch, active-low like the real one.
func (j *Joystick) Button() game.Switch { return button{j} }

type axis struct {
	j          *Joystick
	horizontal bool
}

func (a axis) Get() uint16 { return a.j.read(a.horizontal) }

type button struct {
	j *Joystick
}

func (b button) Get() bool { return !b.j.pressed() }
