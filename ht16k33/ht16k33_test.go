package ht16k33

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// mockI2C pretends to be machine.I2C and records every write
type mockI2C struct {
	addr   uint16
	writes [][]byte
	fail   error
}

func (m *mockI2C) Tx(addr uint16, w, r []byte) error {
	m.addr = addr
	data := make([]byte, len(w))
	copy(data, w)
	m.writes = append(m.writes, data)
	return m.fail
}

func (m *mockI2C) last() []byte {
	if len(m.writes) == 0 {
		return nil
	}
	return m.writes[len(m.writes)-1]
}

func TestInit(t *testing.T) {
	bus := &mockI2C{}
	display := New(bus)
	display.Init()

	want := [][]byte{
		{HT16K33_GENERIC_SYSTEM_ON},
		{HT16K33_GENERIC_DISPLAY_ON},
		{HT16K33_GENERIC_CMD_BRIGHTNESS | 15},
		make([]byte, RAM_SIZE+1),
	}

	if len(bus.writes) != len(want) {
		t.Fatalf("got %d writes, want %d", len(bus.writes), len(want))
	}
	for i := range want {
		if !bytes.Equal(bus.writes[i], want[i]) {
			t.Errorf("write %d = %x, want %x", i, bus.writes[i], want[i])
		}
	}
	if bus.addr != uint16(HT16K33_ADDRESS) {
		t.Errorf("address = %#x, want %#x", bus.addr, HT16K33_ADDRESS)
	}
}

func TestShowDigit(t *testing.T) {
	testCases := []struct {
		name     string
		position uint
		digit    uint8
		index    int
		want     byte
	}{
		{"8 on digit 0", 0, 8, 1, 0x7F},
		{"1 on digit 3", 3, 1, 7, 0x06},
		{"blank", 0, BLANK, 1, 0x00},
		{"out of range blanks", 0, 99, 1, 0x00},
		{"position clamps", 12, 2, 15, 0x5B},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bus := &mockI2C{}
			display := New(bus)
			display.SetPosition(tc.position)
			display.ShowDigit(tc.digit)

			frame := bus.last()
			if len(frame) != RAM_SIZE+1 || frame[0] != HT16K33_GENERIC_DISPLAY_ADDRESS {
				t.Fatalf("frame = %x", frame)
			}
			if frame[tc.index] != tc.want {
				t.Errorf("frame[%d] = %#x, want %#x", tc.index, frame[tc.index], tc.want)
			}
		})
	}
}

func TestShowSegment(t *testing.T) {
	want := []byte{0x01, 0x08, 0x06, 0x30, 0x00}

	for i, glyph := range want {
		bus := &mockI2C{}
		display := New(bus)
		display.ShowDigit(8)
		display.ShowSegment(uint8(i))

		if got := bus.last()[1]; got != glyph {
			t.Errorf("ShowSegment(%d) = %#x, want %#x", i, got, glyph)
		}
	}
}

func TestSetBrightness(t *testing.T) {
	bus := &mockI2C{}
	display := New(bus)

	display.SetBrightness(7)
	if !bytes.Equal(bus.last(), []byte{0xE7}) {
		t.Errorf("brightness 7 sent %x", bus.last())
	}

	display.SetBrightness(40)
	if !bytes.Equal(bus.last(), []byte{0xEF}) {
		t.Errorf("brightness 40 sent %x, want clamped to 15", bus.last())
	}
	if display.brightness != 15 {
		t.Errorf("brightness = %d, want 15", display.brightness)
	}
}

func TestSetAddress(t *testing.T) {
	bus := &mockI2C{}
	display := New(bus)
	display.SetAddress(0x71)
	display.Power(false)

	if bus.addr != 0x71 {
		t.Errorf("address = %#x, want 0x71", bus.addr)
	}
	if !bytes.Equal(bus.last(), []byte{HT16K33_GENERIC_SYSTEM_OFF}) {
		t.Errorf("power off ended with %x", bus.last())
	}
}

func TestErrKeepsFirstFailure(t *testing.T) {
	first := errors.New("nack")
	bus := &mockI2C{fail: first}
	display := New(bus)
	display.Init()

	bus.fail = errors.New("later")
	display.ShowDigit(1)

	if !errors.Is(display.Err(), first) {
		t.Errorf("Err() = %v, want %v", display.Err(), first)
	}
}

func ExampleHT16K33_ShowDigit() {
	// In a real application, this would be machine.I2C0
	bus := &mockI2C{}

	display := New(bus)
	display.Init()
	display.ShowDigit(3)

	fmt.Printf("%x\n", bus.last()[:3])
	// Output: 004f00
}
