package pt2258

import "errors"

// Error categories. Failures returned by this package wrap one of these,
// so callers can classify with errors.Is and still unwrap the detail.
var (
	// ErrConfiguration is returned by New for a missing bus or an
	// address the PT2258 cannot be strapped to.
	ErrConfiguration = errors.New("pt2258: invalid configuration")

	// ErrValidation is returned for a volume or channel argument out of
	// range. No bus traffic has occurred.
	ErrValidation = errors.New("pt2258: value out of range")

	// ErrDeviceNotFound is returned when the device address was not
	// acknowledged on the bus.
	ErrDeviceNotFound = errors.New("pt2258: device not found on the i2c bus")

	// ErrCommunication is returned for any other bus failure and wraps
	// the transport error.
	ErrCommunication = errors.New("pt2258: i2c communication error")
)

// ErrNACK signals that a device did not ACK its address. Bus
// implementations or wrappers report it, directly or wrapped, so the
// driver can tell an absent device from a failing bus.
var ErrNACK = errors.New("i2c: no ack received")
