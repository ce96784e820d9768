/*
 * Reaction for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package ht16k33

// HT16K33 LED Backpack Commands
const (
	HT16K33_GENERIC_DISPLAY_ON      uint8 = 0x81
	HT16K33_GENERIC_DISPLAY_OFF     uint8 = 0x80
	HT16K33_GENERIC_SYSTEM_ON       uint8 = 0x21
	HT16K33_GENERIC_SYSTEM_OFF      uint8 = 0x20
	HT16K33_GENERIC_DISPLAY_ADDRESS uint8 = 0x00
	HT16K33_GENERIC_CMD_BRIGHTNESS  uint8 = 0xE0
	HT16K33_ADDRESS                 uint8 = 0x70

	// Digit value that turns every segment off
	BLANK uint8 = 10

	// Display RAM: 8 rows of 16 bits
	RAM_SIZE   int  = 16
	MAX_DIGITS uint = 8
)

// Segment bit patterns (g-f-e-d-c-b-a) for 0-9, then blank
var charset = [11]byte{
	0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, 0x7F, 0x6F, 0x00,
}

// Direction cues: up (a), down (d), right (b+c), left (e+f)
var cues = [4]byte{0x01, 0x08, 0x06, 0x30}

// Bus is the I2C transfer the driver needs. *machine.I2C satisfies it.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

type HT16K33 struct {
	// Host I2C bus
	bus Bus
	// Internal data: address, brightness level, digit in use, buffer
	address    uint8
	brightness uint
	position   uint
	buffer     [RAM_SIZE]byte
	// First bus failure, if any
	err error
}

func New(bus Bus) HT16K33 {

	return HT16K33{bus: bus, address: HT16K33_ADDRESS, brightness: 15}
}

// SetAddress selects a backpack with its address jumpers bridged
func (p *HT16K33) SetAddress(address uint8) {

	p.address = address
}

// SetPosition picks which of the backpack's digits the game uses
func (p *HT16K33) SetPosition(position uint) {

	if position >= MAX_DIGITS {
		position = MAX_DIGITS - 1
	}

	p.position = position
}

func (p *HT16K33) Init() {

	p.Power(true)
	p.SetBrightness(15)
	p.Clear()
	p.Draw()
}

func (p *HT16K33) Power(isOn bool) {

	if isOn {
		p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_ON)
		p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_ON)
	} else {
		p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_OFF)
		p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_OFF)
	}
}

func (p *HT16K33) SetBrightness(brightness uint) {

	if brightness > 15 {
		brightness = 15
	}

	p.brightness = brightness
	p.i2cWriteByte(HT16K33_GENERIC_CMD_BRIGHTNESS | byte(brightness&0xFF))
}

// ShowDigit shows 0-9 on the game digit; anything else blanks it
func (p *HT16K33) ShowDigit(digit uint8) {

	if digit > BLANK {
		digit = BLANK
	}

	p.setGlyph(charset[digit])
	p.Draw()
}

// ShowSegment lights one direction cue: 0 up, 1 down, 2 right, 3 left
func (p *HT16K33) ShowSegment(index uint8) {

	glyph := charset[BLANK]
	if int(index) < len(cues) {
		glyph = cues[index]
	}

	p.setGlyph(glyph)
	p.Draw()
}

func (p *HT16K33) Clear() {

	// Clear the display buffer
	for i := 0; i < RAM_SIZE; i++ {
		p.buffer[i] = 0x00
	}
}

func (p *HT16K33) Draw() {

	// Set up the buffer holding the data to be
	// transmitted to the LED: the RAM start
	// address followed by every RAM byte
	output_buffer := [RAM_SIZE + 1]byte{}
	output_buffer[0] = HT16K33_GENERIC_DISPLAY_ADDRESS
	copy(output_buffer[1:], p.buffer[:])

	// Write out the transmit buffer
	p.i2cWriteBlock(output_buffer[:])
}

// Err returns the first I2C failure since the driver was made
func (p *HT16K33) Err() error {

	return p.err
}

func (p *HT16K33) setGlyph(glyph byte) {

	// Each digit is the low byte of its RAM row
	p.buffer[p.position*2] = glyph
}

func (p *HT16K33) i2cWriteByte(value byte) {

	// Convenience function to write a single byte to the display
	data := [1]byte{value}
	p.i2cWriteBlock(data[:])
}

func (p *HT16K33) i2cWriteBlock(data []byte) {

	// Convenience function to write a 'count' bytes to the display
	err := p.bus.Tx(uint16(p.address), data, nil)
	if err != nil && p.err == nil {
		p.err = err
	}
}
