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

	"reaction/game"
	"reaction/ht16k33"

	"tinygo.org/x/drivers/buzzer"
)

/*
 * GLOBALS
 */
// Display instance
var display ht16k33.HT16K33

// Speaker instance
var speaker buzzer.Device

// Game instance
var controller *game.Controller

// Joystick axes, plus an unconnected input whose noise seeds the targets
var PIN_Y machine.ADC = machine.ADC{Pin: machine.GP27}
var PIN_X machine.ADC = machine.ADC{Pin: machine.GP26}
var PIN_NOISE machine.ADC = machine.ADC{Pin: machine.GP28}
