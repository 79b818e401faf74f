package vfdclock

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"

	"github.com/cavac/vfdclock/conn"
)

// Conn errors.
var (
	ErrDeviceOpen = errors.New("vfdclock: cannot open display device")
)

// Conn is the connection interface for communicating with the display
// controller. Every Command is sent as one contiguous bus transaction:
// the register address byte immediately followed by the payload.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Command writes a register address byte followed by payload bytes.
	Command(reg byte, payload ...byte) error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C bus number, use -1 to use the first available bus.
	Device int

	// Addr is the 7-bit I²C address.
	Addr uint16

	// Speed is the bus clock speed.
	Speed physic.Frequency
}

// DefaultI2CConfig matches the QWIIC wiring of the display module.
var DefaultI2CConfig = I2CConfig{
	Device: DefaultBus,
	Addr:   DefaultAddr,
	Speed:  DefaultSpeed,
}

type i2cConn struct {
	*conn.I2C
}

// OpenI2C opens the display device on an I²C bus. Failures wrap
// ErrDeviceOpen so callers can tell an open failure apart from a later
// write failure.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := conn.Open(config.Device, config.Addr, config.Speed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceOpen, err)
	}

	return &i2cConn{I2C: c}, nil
}

func (c *i2cConn) Command(reg byte, payload ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{reg}, payload...))
	return
}
