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

// Direction is a discrete joystick gesture.
type Direction uint8

const (
	None Direction = iota
	Right
	Left
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Display segment indexes for the four cue directions
const (
	SegmentUp    uint8 = 0
	SegmentDown  uint8 = 1
	SegmentRight uint8 = 2
	SegmentLeft  uint8 = 3

	segmentCount = 4
)

// Segment returns the display segment that cues d. None has no segment
// and maps to SegmentUp; callers only ask for real targets.
func (d Direction) Segment() uint8 {
	switch d {
	case Down:
		return SegmentDown
	case Right:
		return SegmentRight
	case Left:
		return SegmentLeft
	default:
		return SegmentUp
	}
}

// DirectionForSegment is the inverse of Direction.Segment.
func DirectionForSegment(i uint8) Direction {
	switch i {
	case SegmentUp:
		return Up
	case SegmentDown:
		return Down
	case SegmentRight:
		return Right
	case SegmentLeft:
		return Left
	default:
		return None
	}
}

// Calibration holds the raw-sample thresholds of one joystick/ADC pairing.
//
// DeadZone is measured from Center on each axis. High and Low bound the
// menu's vertical trigger band; NeutralLow..NeutralHigh (inclusive) is the
// band the stick must come back to before the menu accepts another change.
type Calibration struct {
	Max         int
	Center      int
	DeadZone    int
	High        int
	Low         int
	NeutralLow  int
	NeutralHigh int
}

// Calibration10Bit matches a 10-bit ADC (0-1023), as on an Arduino.
var Calibration10Bit = Calibration{
	Max:         1023,
	Center:      512,
	DeadZone:    100,
	High:        600,
	Low:         400,
	NeutralLow:  450,
	NeutralHigh: 570,
}

// Calibration16Bit matches TinyGo's machine.ADC, which scales every
// reading to 16 bits.
var Calibration16Bit = Calibration10Bit.Scaled(64)

// Scaled multiplies every threshold by factor. Max is rescaled so that it
// stays the top of the range.
func (c Calibration) Scaled(factor int) Calibration {
	return Calibration{
		Max:         (c.Max+1)*factor - 1,
		Center:      c.Center * factor,
		DeadZone:    c.DeadZone * factor,
		High:        c.High * factor,
		Low:         c.Low * factor,
		NeutralLow:  c.NeutralLow * factor,
		NeutralHigh: c.NeutralHigh * factor,
	}
}

// Classify turns a raw (x, y) sample into a direction. Inside the dead zone
// on both axes it returns None. Otherwise the axis with the larger
// deflection wins; a tie goes to the y axis. Low y readings are up.
func (c Calibration) Classify(x, y int) Direction {
	dx := x - c.Center
	dy := y - c.Center
	absDx := abs(dx)
	absDy := abs(dy)

	if absDx < c.DeadZone && absDy < c.DeadZone {
		return None
	}

	if absDx > absDy {
		if dx > 0 {
			return Right
		}
		return Left
	}

	if dy < 0 {
		return Up
	}
	return Down
}

// Classify classifies a sample with Calibration10Bit.
func Classify(x, y int) Direction {
	return Calibration10Bit.Classify(x, y)
}

// Beyond reports whether a vertical reading is outside the trigger band.
func (c Calibration) Beyond(y int) bool {
	return y > c.High || y < c.Low
}

// Neutral reports whether a vertical reading is back near the centre.
func (c Calibration) Neutral(y int) bool {
	return y >= c.NeutralLow && y <= c.NeutralHigh
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
