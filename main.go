package main

import (
	"fmt"
	"machine"
	"time"

	"github.com/elehobica/pico_tinygo_pt2258/pt2258"
)

var (
	i2c    *machine.I2C
	sdaPin machine.Pin
	sclPin machine.Pin
	ledPin machine.Pin
	serial = machine.Serial
)

type Pin struct {
	*machine.Pin
}

func (pin Pin) Toggle() {
	pin.Set(!pin.Get())
}

func (pin Pin) ErrorBlinkFor(count int) {
	for {
		for i := 0; i < count; i++ {
			pin.High()
			time.Sleep(250 * time.Millisecond)
			pin.Low()
			time.Sleep(250 * time.Millisecond)
		}
		pin.Low()
		time.Sleep(500 * time.Millisecond)
	}
}

type TestError struct {
	error
	Code int
}

func main() {
	led := &Pin{&ledPin}
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()

	err := pt2258_test(led)
	if err != nil {
		fmt.Printf("ERROR[%d]: %s\r\n", err.Code, err.Error())
		led.ErrorBlinkFor(err.Code)
	}
}

func pt2258_test(led *Pin) (testError *TestError) {
	println(); println()
	println("========================")
	println("== pico_tinygo_pt2258 ==")
	println("========================")

	err := i2c.Configure(machine.I2CConfig{
		SDA:       sdaPin,
		SCL:       sclPin,
		Frequency: 100 * machine.KHz,
	})
	if err != nil {
		return &TestError{error: fmt.Errorf("i2c configure error: %s", err.Error()), Code: 1}
	}

	vol, err := pt2258.New(i2c, pt2258.ADDR_CODE00)
	if err != nil {
		return &TestError{error: fmt.Errorf("pt2258 configure error: %s", err.Error()), Code: 2}
	}
	fmt.Printf("pt2258 ok\r\n")

	masterVolume := 50
	muted := false
	if err := vol.SetMasterVolume(masterVolume); err != nil {
		return &TestError{error: fmt.Errorf("master volume error: %s", err.Error()), Code: 3}
	}

	fmt.Printf("keys: +/- master volume, 1..6 set channel to master, m mute toggle, c clear\r\n")

	for loop := 0; ; loop++ {
		if serial.Buffered() > 0 {
			data, _ := serial.ReadByte()
			switch data {
			case '=':
				fallthrough
			case '+':
				if masterVolume < 100 {
					masterVolume++
					err = vol.SetMasterVolume(masterVolume)
					fmt.Printf("master volume: %d\r\n", masterVolume)
				}
			case '-':
				if masterVolume > 0 {
					masterVolume--
					err = vol.SetMasterVolume(masterVolume)
					fmt.Printf("master volume: %d\r\n", masterVolume)
				}
			case 'm':
				muted = !muted
				err = vol.SetMute(muted)
				if muted {
					fmt.Printf("muted\r\n")
				} else {
					fmt.Printf("unmuted\r\n")
				}
			case 'c':
				err = vol.Configure()
				masterVolume = 100
				muted = false
				fmt.Printf("cleared\r\n")
			case '1', '2', '3', '4', '5', '6':
				channel := int(data - '1')
				err = vol.SetChannelVolume(channel, masterVolume)
				fmt.Printf("channel %d volume: %d\r\n", channel+1, masterVolume)
			default:
			}
			if err != nil {
				return &TestError{error: fmt.Errorf("pt2258 write error: %s", err.Error()), Code: 4}
			}
		}
		if loop%50 == 0 {
			led.Toggle()
		}
		time.Sleep(10 * time.Millisecond)
	}
}
