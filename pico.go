//go:build pico
// +build pico

package main

import (
	"machine"
)

func init() {
	i2c = machine.I2C0
	sdaPin = machine.GP4
	sclPin = machine.GP5

	ledPin = machine.LED
}
