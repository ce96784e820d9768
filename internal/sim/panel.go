package sim

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"reaction/game"
	"reaction/sevenseg"
)

// Panel layout, in cells from the top left of the screen
const (
	digitX = 2
	digitY = 1

	lampX = 14

	statusY = 10
)

var (
	styleDefault = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleSegment = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleLED     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBuzzer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleMiss    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

type cell struct {
	x, y int
	r    rune
}

// Cells of each segment, a to g, relative to the digit origin
var segmentCells = [7][]cell{
	{{1, 0, '━'}, {2, 0, '━'}, {3, 0, '━'}, {4, 0, '━'}},
	{{5, 1, '┃'}, {5, 2, '┃'}},
	{{5, 4, '┃'}, {5, 5, '┃'}},
	{{1, 6, '━'}, {2, 6, '━'}, {3, 6, '━'}, {4, 6, '━'}},
	{{0, 4, '┃'}, {0, 5, '┃'}},
	{{0, 1, '┃'}, {0, 2, '┃'}},
	{{1, 3, '━'}, {2, 3, '━'}, {3, 3, '━'}, {4, 3, '━'}},
}

// Panel draws the simulated front panel: one seven-segment digit, the
// indicator LED, the buzzer and a status block.
type Panel struct {
	mu     sync.Mutex
	screen tcell.Screen

	segments  [7]bool
	indicator bool
	buzzer    bool

	session game.Session
	level   game.Level
	last    *game.Outcome
}

// NewPanel returns a panel drawing on an initialised screen.
func NewPanel(screen tcell.Screen) *Panel {
	return &Panel{screen: screen, session: game.Session{Selection: 1}}
}

// Segments returns the seven segment inputs, a to g, for sevenseg.New.
func (p *Panel) Segments() [7]sevenseg.Pin {
	var pins [7]sevenseg.Pin
	for i := range pins {
		pins[i] = lamp{p, &p.segments[i]}
	}
	return pins
}

// Indicator is the success LED.
func (p *Panel) Indicator() game.Actuator { return lamp{p, &p.indicator} }

// Buzzer is the buzzer's on-screen lamp.
func (p *Panel) Buzzer() game.Actuator { return lamp{p, &p.buzzer} }

// SetStatus refreshes the status block.
func (p *Panel) SetStatus(s game.Session, l game.Level) {
	p.mu.Lock()
	p.session = s
	p.level = l
	p.mu.Unlock()

	p.Draw()
}

// RoundFinished shows the result of the last round.
func (p *Panel) RoundFinished(o game.Outcome) {
	p.mu.Lock()
	p.last = &o
	p.mu.Unlock()

	p.Draw()
}

// Draw repaints the whole panel.
func (p *Panel) Draw() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.screen.Clear()

	for i, cells := range segmentCells {
		style := styleDim
		if p.segments[i] {
			style = styleSegment
		}
		for _, c := range cells {
			p.screen.SetContent(digitX+c.x, digitY+c.y, c.r, nil, style)
		}
	}

	p.drawLamp(digitY+1, "LED", p.indicator, styleLED)
	p.drawLamp(digitY+4, "BUZZER", p.buzzer, styleBuzzer)

	s := p.session
	p.text(statusY, styleDefault, fmt.Sprintf("mode  %s", s.Mode))
	p.text(statusY+1, styleDefault, fmt.Sprintf("level %d  (%v per round)", s.Selection, p.level.Timeout))
	p.text(statusY+2, styleDefault, fmt.Sprintf("round %d/%d", s.Rounds, p.level.Rounds))
	p.text(statusY+3, styleDefault, fmt.Sprintf("hits %d  misses %d", s.Hits, s.Misses))

	if o := p.last; o != nil {
		switch {
		case o.Correct:
			p.text(statusY+4, styleHit, fmt.Sprintf("HIT   %s", o.Target))
		case o.TimedOut():
			p.text(statusY+4, styleMiss, fmt.Sprintf("MISS  %s, too slow", o.Target))
		default:
			p.text(statusY+4, styleMiss, fmt.Sprintf("MISS  %s, moved %s", o.Target, o.Observed))
		}
	}

	p.text(statusY+6, styleDim, "arrows/hjkl move  space start/stop  esc quit")

	p.screen.Show()
}

func (p *Panel) drawLamp(y int, label string, on bool, lit tcell.Style) {
	style := styleDim
	if on {
		style = lit
	}
	p.screen.SetContent(lampX, y, '●', nil, style)
	for i, r := range label {
		p.screen.SetContent(lampX+2+i, y, r, nil, style)
	}
}

func (p *Panel) text(y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		p.screen.SetContent(digitX+i, y, r, nil, style)
	}
}

// lamp is one on/off element of the panel. It satisfies both
// game.Actuator and sevenseg.Pin.
type lamp struct {
	p     *Panel
	state *bool
}

func (l lamp) Set(on bool) {
	l.p.mu.Lock()
	changed := *l.state != on
	*l.state = on
	l.p.mu.Unlock()

	if changed {
		l.p.Draw()
	}
}

// Gang drives several actuators as one, such as the buzzer lamp and the
// speaker tone.
func Gang(outs ...game.Actuator) game.Actuator {
	return gang(outs)
}

type gang []game.Actuator

func (g gang) Set(on bool) {
	for _, a := range g {
		a.Set(on)
	}
}
