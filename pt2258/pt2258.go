// Package pt2258 provides a driver for the Princeton Technology PT2258
// 6-channel electronic volume controller IC.
//
// Datasheet: http://www.princeton.com.tw/Portals/0/Product/PT2258.pdf
//
// The PT2258 is write-only: attenuation is encoded per channel (and for
// the master bus) in two registers, one in 10dB steps and one in 1dB
// steps, and none of them can be read back. The public API takes a
// 0..100 loudness value and maps it onto the 0..79dB attenuation range.
package pt2258

import (
	"errors"
	"fmt"
	"time"

	"tinygo.org/x/drivers"
)

// Device wraps an I2C connection to a PT2258. The bus must already be
// configured. Access to a shared bus is not serialized here; callers
// sharing one bus across devices or goroutines must do that themselves.
type Device struct {
	bus  drivers.I2C
	addr uint16 // 7-bit address
	buf  [2]byte
}

// New validates the wiring, runs the power-up sequence and returns a
// ready Device. addr is one of the four strap-selectable 8-bit
// addresses (ADDR_CODE00..ADDR_CODE11). New blocks for the 200ms
// settle time and issues one bus write, so it fails with
// ErrDeviceNotFound or ErrCommunication when the chip does not answer.
func New(bus drivers.I2C, addr uint16) (*Device, error) {
	if bus == nil {
		return nil, fmt.Errorf("%w: i2c bus is required", ErrConfiguration)
	}
	switch addr {
	case ADDR_CODE00, ADDR_CODE01, ADDR_CODE10, ADDR_CODE11:
	default:
		return nil, fmt.Errorf("%w: %#02x is not a PT2258 address", ErrConfiguration, addr)
	}
	d := &Device{
		bus:  bus,
		addr: addr >> 1,
	}
	if err := d.Configure(); err != nil {
		return nil, err
	}
	return d, nil
}

// Configure waits out the post-power-up settle time and clears all
// attenuation registers. New calls it once; call it again after the
// device has been power cycled.
func (d *Device) Configure() error {
	time.Sleep(200 * time.Millisecond)
	return d.write(0x00, REG_CLEAR)
}

// SetMasterVolume sets the master volume, 0 (quietest) to 100 (loudest).
func (d *Device) SetMasterVolume(volume int) error {
	if volume < 0 || volume > 100 {
		return fmt.Errorf("%w: master volume %d not in 0..100", ErrValidation, volume)
	}
	att := volumeMap(volume, 0, 100, 0, 79)
	return d.write(MASTER_10DB|uint8(att/10), MASTER_1DB|uint8(att%10))
}

// SetChannelVolume sets the volume of one channel, 0..5 for physical
// channels 1..6, volume 0 (quietest) to 100 (loudest).
func (d *Device) SetChannelVolume(channel, volume int) error {
	if volume < 0 || volume > 100 {
		return fmt.Errorf("%w: channel volume %d not in 0..100", ErrValidation, volume)
	}
	if channel < 0 || channel > 5 {
		return fmt.Errorf("%w: channel %d not in 0..5", ErrValidation, channel)
	}
	att := volumeMap(volume, 0, 100, 0, 79)
	reg := channelRegisters[channel]
	return d.write(reg.reg10dB|uint8(att/10), reg.reg1dB|uint8(att%10))
}

// SetMute mutes or unmutes all channels. Attenuation registers keep
// their values across a mute.
func (d *Device) SetMute(enabled bool) error {
	if enabled {
		return d.write(0x00, MUTE_ON)
	}
	return d.write(0x00, MUTE_OFF)
}

// write sends one register pair to the device. The 10dB byte must go
// out before the 1dB byte; the chip latches on the second byte.
func (d *Device) write(reg10dB, reg1dB uint8) error {
	d.buf[0] = reg10dB
	d.buf[1] = reg1dB
	if err := d.bus.Tx(d.addr, d.buf[:2], nil); err != nil {
		if errors.Is(err, ErrNACK) {
			return ErrDeviceNotFound
		}
		return fmt.Errorf("%w: %w", ErrCommunication, err)
	}
	return nil
}

// volumeMap rescales value from [inMin, inMax] to [outMin, outMax] with
// floor division, clamping first, and flips the scale so that 100 in
// means outMin (wide open) out. The flip is anchored at the literal
// 100, not inMax, so the helper is only correct for inMax == 100; all
// callers pass (0, 100, 0, 79).
func volumeMap(value, inMin, inMax, outMin, outMax int) int {
	if value < inMin {
		value = inMin
	} else if value > inMax {
		value = inMax
	}
	flipped := 100 - value
	return (flipped-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
