//go:build tinygo

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
package main

import (
	"context"
	"log"
	"machine"
	prand "math/rand"
	"time"

	"reaction/game"
	"reaction/ht16k33"

	"tinygo.org/x/drivers/buzzer"
)

func main() {

	// Set up the hardware or fail
	if !setup() {
		failLoop()
	}

	// Play the game: menu and rounds, forever
	controller.Run(context.Background())
}

/*
 *  Initialisation Functions
 */
func setup() bool {
	// Set up the game hardware
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{SCL: PIN_SCL, SDA: PIN_SDA})
	if err != nil {
		// Couldn't configure I2C
		return false
	}

	// Set up the LED digit
	display = ht16k33.New(i2c)
	display.SetPosition(DISPLAY_DIGIT)
	display.Init()
	display.SetBrightness(DISPLAY_BRIGHTNESS)
	if display.Err() != nil {
		// No backpack on the bus
		return false
	}

	// Set up the success LED
	PIN_LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_LED.Set(OFF)

	// Set up the speaker
	PIN_SPEAKER.Configure(machine.PinConfig{Mode: machine.PinOutput})
	speaker = buzzer.New(PIN_SPEAKER)
	speaker.Off()

	// Set up the joystick button: pulled up, so pressed reads low
	PIN_BUTTON.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	// Set up the X- and Y-axis joystick input
	machine.InitADC()
	for _, adc := range []machine.ADC{PIN_X, PIN_Y, PIN_NOISE} {
		err = adc.Configure(machine.ADCConfig{})
		if err != nil {
			return false
		}
	}

	controller, err = game.NewController(game.Hardware{
		Display:   &display,
		X:         PIN_X,
		Y:         PIN_Y,
		Button:    PIN_BUTTON,
		Buzzer:    speakerSwitch{&speaker},
		Indicator: PIN_LED,
	}, game.Config{
		Calibration: game.Calibration16Bit,
		Rand:        prand.New(prand.NewSource(seed())),
		Log:         log.New(machine.Serial, "", 0),
	})

	return err == nil
}

// seed mixes floating-input noise with the boot time
func seed() int64 {

	var s int64 = time.Now().UnixNano()
	for i := 0; i < 16; i++ {
		s = s<<4 ^ int64(PIN_NOISE.Get()&0x0F)
	}

	return s
}

// speakerSwitch lets the game drive the active buzzer as a plain output
type speakerSwitch struct {
	device *buzzer.Device
}

func (s speakerSwitch) Set(on bool) {

	if on {
		s.device.On()
	} else {
		s.device.Off()
	}
}

func failLoop() {

	// Signal hardware failure on the Pico LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Set(OFF)
		time.Sleep(time.Millisecond * time.Duration(FAIL_BLINK_MS))
		led.Set(ON)
		time.Sleep(time.Millisecond * time.Duration(FAIL_BLINK_MS))
	}
}
