//go:build tinygo

/*
 * Reaction for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"machine"
)

/*
 * CONSTANTS
 */
const (
	ON  bool = true
	OFF bool = false

	// GPIO pins
	PIN_SDA     machine.Pin = machine.GP8
	PIN_SCL     machine.Pin = machine.GP9
	PIN_LED     machine.Pin = machine.GP20
	PIN_SPEAKER machine.Pin = machine.GP16
	PIN_BUTTON  machine.Pin = machine.GP19

	// Which of the backpack's digits shows the game
	DISPLAY_DIGIT uint = 0
	// Display brightness, 0-15
	DISPLAY_BRIGHTNESS uint = 8

	// Hardware failure blink period
	FAIL_BLINK_MS int64 = 100
)
