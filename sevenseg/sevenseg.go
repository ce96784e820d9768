/*
 * Reaction for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */

// Package sevenseg drives a single common-cathode seven-segment digit wired
// straight to seven output pins, segment a on pin 0 through segment g on
// pin 6.
//
//	   a
//	 f   b
//	   g
//	 e   c
//	   d
package sevenseg

// Blank is the digit value that turns every segment off.
const Blank uint8 = 10

// Segment bit patterns (g-f-e-d-c-b-a) for 0-9, then blank
var font = [11]byte{
	0b00111111, // 0
	0b00000110, // 1
	0b01011011, // 2
	0b01001111, // 3
	0b01100110, // 4
	0b01101101, // 5
	0b01111101, // 6
	0b00000111, // 7
	0b01111111, // 8
	0b01101111, // 9
	0b00000000, // blank
}

// Direction cue patterns, indexed up, down, right, left. The side cues
// light both segments of their edge.
var cues = [4]byte{
	0b00000001, // a
	0b00001000, // d
	0b00000110, // b, c
	0b00110000, // e, f
}

// Pin is one segment output. machine.Pin satisfies it.
type Pin interface {
	Set(on bool)
}

// Display is a seven-segment digit on seven pins.
type Display struct {
	pins    [7]Pin
	pattern byte
}

// New returns a display on the given segment pins, a to g.
func New(pins [7]Pin) *Display {
	return &Display{pins: pins}
}

// ShowDigit shows 0-9. Any other value blanks the digit.
func (d *Display) ShowDigit(v uint8) {
	if v > Blank {
		v = Blank
	}
	d.write(font[v])
}

// ShowSegment lights the cue for direction i (0 up, 1 down, 2 right,
// 3 left) and nothing else. Out-of-range values blank the digit.
func (d *Display) ShowSegment(i uint8) {
	if int(i) >= len(cues) {
		d.write(font[Blank])
		return
	}
	d.write(cues[i])
}

// Clear turns every segment off.
func (d *Display) Clear() {
	d.write(font[Blank])
}

// Pattern returns the segment bits currently driven, a in bit 0.
func (d *Display) Pattern() byte {
	return d.pattern
}

func (d *Display) write(pattern byte) {
	d.pattern = pattern
	for i, p := range d.pins {
		p.Set((pattern>>i)&1 == 1)
	}
}
