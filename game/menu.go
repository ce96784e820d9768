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

// menu lets the player browse the level table and arm the session.
type menu struct {
	hw  Hardware
	cfg *Config
	s   *Session
}

func (m *menu) tick() {
	m.show()

	// Button first: a press arms or disarms the level
	if buttonEdge(m.hw.Button, m.s) {
		m.toggle()
		return
	}

	// Then the stick: one level step per excursion out of the centre
	y := int(m.hw.Y.Get())
	if !m.s.moved {
		if m.cfg.Calibration.Beyond(y) {
			m.step(y)
			m.s.moved = true
		}
	} else if m.cfg.Calibration.Neutral(y) {
		m.s.moved = false
	}

	m.cfg.Clock.Sleep(MenuDelay)
}

func (m *menu) show() {
	m.hw.Display.ShowDigit(uint8(m.s.Selection))
}

// step changes the selection for a vertical reading beyond the trigger
// band: a reading above High goes back a level, one below Low goes
// forward. Both wrap.
func (m *menu) step(y int) {
	n := m.cfg.Levels.Len()
	if y > m.cfg.Calibration.High {
		m.s.Selection = m.s.Selection.Prev(n)
	} else if y < m.cfg.Calibration.Low {
		m.s.Selection = m.s.Selection.Next(n)
	}

	m.cfg.Log.Printf("level %d selected", m.s.Selection)

	pulse(m.cfg.Clock, m.hw.Buzzer, StepPulse)
	m.show()
	m.cfg.Clock.Sleep(StepDelay)
}

// toggle arms the selected level from the menu, or drops back to the menu
// from a level. The round counter restarts either way.
func (m *menu) toggle() {
	m.s.Rounds = 0
	m.s.round = round{}
	m.show()

	if m.s.Mode == ModeInLevel {
		m.s.Mode = ModeMenu
		m.cfg.Log.Printf("level %d stopped", m.s.Selection)
		pulse(m.cfg.Clock, m.hw.Buzzer, ExitPulse)
		return
	}

	// Let the player know the level is about to begin
	for i := 0; i < StartCycles; i++ {
		m.hw.Buzzer.Set(true)
		m.hw.Display.ShowDigit(StartMarker)
		m.cfg.Clock.Sleep(StartHalfCycle)
		m.hw.Display.ShowDigit(Blank)
		m.hw.Buzzer.Set(false)
		m.cfg.Clock.Sleep(StartHalfCycle)
	}

	m.s.Mode = ModeInLevel
	m.cfg.Log.Printf("level %d started", m.s.Selection)
}

// buttonEdge samples the active-low button and reports a new press.
func buttonEdge(button Switch, s *Session) bool {
	pressed := !button.Get()
	edge := pressed && !s.pressed
	s.pressed = pressed
	return edge
}
