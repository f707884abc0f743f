package pt2258

// Valid I2C addresses
// The PT2258 exposes four strap-selectable bus addresses through its
// CODE1/CODE2 pins. Datasheet values are the 8-bit write addresses.
const (
	ADDR_CODE00 = 0x8C // CODE1=0, CODE2=0
	ADDR_CODE01 = 0x88 // CODE1=0, CODE2=1
	ADDR_CODE10 = 0x84 // CODE1=1, CODE2=0
	ADDR_CODE11 = 0x80 // CODE1=1, CODE2=1
)

// Function registers
const (
	REG_CLEAR = 0xC0 // Clear all attenuation registers
)

// Mute control registers
const (
	MUTE_ON  = 0xF9 // All channels muted
	MUTE_OFF = 0xF8 // All channels unmuted
)

// Master volume registers
// The low nibble carries the step count for the upper-nibble op-code.
const (
	MASTER_10DB = 0xD0 // 10dB steps, low nibble 0..7
	MASTER_1DB  = 0xE0 // 1dB steps, low nibble 0..9
)

// channelRegisters holds the (10dB, 1dB) register pair for each channel,
// indexed 0..5 for physical channels 1..6. The table is fixed; the low
// nibble of each op-code is filled in with the step count at write time.
var channelRegisters = [6]channelRegister{
	{0x80, 0x90}, // channel 1
	{0x40, 0x50}, // channel 2
	{0x00, 0x10}, // channel 3
	{0x20, 0x30}, // channel 4
	{0x60, 0x70}, // channel 5
	{0xA0, 0xB0}, // channel 6
}

type channelRegister struct {
	reg10dB uint8
	reg1dB  uint8
}
