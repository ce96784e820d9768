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

// roundEngine runs the timed rounds of an armed level. Each tick is one
// pass of the polling loop, so a round spans several ticks.
type roundEngine struct {
	hw   Hardware
	cfg  *Config
	s    *Session
	menu *menu
}

func (r *roundEngine) tick() {
	if !r.s.round.active && !r.begin() {
		return
	}

	level := r.cfg.Levels.At(r.s.Selection)
	clock := r.cfg.Clock

	// Out of time: a timeout is always a miss
	if clock.Now().Sub(r.s.round.start) >= level.Timeout {
		r.finish(None)
		return
	}

	// The button abandons the level without scoring the round
	if buttonEdge(r.hw.Button, r.s) {
		r.menu.toggle()
		return
	}

	observed := r.cfg.Calibration.Classify(int(r.hw.X.Get()), int(r.hw.Y.Get()))
	if observed != None {
		r.finish(observed)
		return
	}

	clock.Sleep(PollInterval)
}

// begin starts the next round, or ends the level once its round budget is
// spent. It reports whether a round is now running.
func (r *roundEngine) begin() bool {
	level := r.cfg.Levels.At(r.s.Selection)
	if r.s.Rounds >= level.Rounds {
		r.s.Mode = ModeMenu
		r.s.Rounds = 0
		r.hw.Display.ShowDigit(Blank)
		r.cfg.Log.Printf("level %d complete: %d hits, %d misses", r.s.Selection, r.s.Hits, r.s.Misses)
		return false
	}

	r.s.Rounds++
	target := DirectionForSegment(uint8(r.cfg.Rand.Intn(segmentCount)))
	r.s.round = round{
		active: true,
		start:  r.cfg.Clock.Now(),
		target: target,
	}
	r.hw.Display.ShowSegment(target.Segment())

	return true
}

// finish scores the running round, plays the feedback and gives the player
// a chance to change level before the next round.
func (r *roundEngine) finish(observed Direction) {
	clock := r.cfg.Clock
	o := Outcome{
		Level:    r.s.Selection,
		Round:    r.s.Rounds,
		Target:   r.s.round.target,
		Observed: observed,
		Correct:  observed != None && observed == r.s.round.target,
	}
	r.s.round = round{}

	if o.Observed == None {
		r.cfg.Log.Printf("round %d: timeout, wanted %s", o.Round, o.Target)
	} else {
		r.cfg.Log.Printf("round %d: moved %s, wanted %s", o.Round, o.Observed, o.Target)
	}

	if o.Correct {
		r.s.Hits++
		r.cfg.Log.Printf("win")
		pulse(clock, r.hw.Indicator, WinPulse)
	} else {
		r.s.Misses++
		r.cfg.Log.Printf("lose")
		pulse(clock, r.hw.Buzzer, LosePulse)
		clock.Sleep(LoseHold)
	}

	if r.cfg.Reporter != nil {
		r.cfg.Reporter.RoundFinished(o)
	}

	r.hw.Display.ShowDigit(Blank)
	clock.Sleep(ClearDelay)

	// A stick held up or down after the round changes level right away,
	// the same way it does from the menu
	y := int(r.hw.Y.Get())
	if r.cfg.Calibration.Beyond(y) {
		r.menu.step(y)
		r.s.moved = true
	}
}
