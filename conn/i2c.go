// Package conn provides the I²C transport used by the display driver.
package conn

import (
	"fmt"
	"strconv"

	periphconn "periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

// Assignable 7-bit address range; everything outside it is reserved by the
// I²C specification.
const (
	ScanFirst = 0x08
	ScanLast  = 0x77
)

type I2C struct {
	bus  i2c.BusCloser
	conn periphconn.Conn
}

// Open connects to a device on the numbered I²C bus. A negative device
// number selects the first available bus. A zero speed keeps the bus
// default.
func Open(device int, addr uint16, speed physic.Frequency) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.Itoa(device))
	}
	if err != nil {
		return nil, err
	}

	if speed > 0 {
		if err = bus.SetSpeed(speed); err != nil {
			_ = bus.Close()
			return nil, err
		}
	}

	return New(bus, addr), nil
}

// New wraps an already open bus. Close only closes the bus if it implements
// i2c.BusCloser.
func New(bus i2c.Bus, addr uint16) *I2C {
	c := &I2C{conn: &i2c.Dev{Bus: bus, Addr: addr}}
	if bc, ok := bus.(i2c.BusCloser); ok {
		c.bus = bc
	}
	return c
}

func (c *I2C) String() string {
	if c.bus == nil {
		return "I²C"
	}
	return fmt.Sprintf("I²C bus %s", c.bus)
}

func (c *I2C) Close() error {
	if c.bus == nil {
		return nil
	}
	return c.bus.Close()
}

// Write sends p to the device as a single bus transaction.
func (c *I2C) Write(p []byte) (int, error) {
	return len(p), c.conn.Tx(p, nil)
}

func (c *I2C) Read(p []byte) (int, error) {
	return len(p), c.conn.Tx(nil, p)
}

// Probe reports whether a device answers at addr. It issues a single one
// byte read, which leaves device state untouched.
func Probe(bus i2c.Bus, addr uint16) bool {
	var buf [1]byte
	return bus.Tx(addr, nil, buf[:]) == nil
}

// ScanBus probes every assignable address on bus and returns the addresses
// that answered. Probe misses are routine, not errors.
func ScanBus(bus i2c.Bus) []uint16 {
	var found []uint16
	for addr := uint16(ScanFirst); addr <= ScanLast; addr++ {
		if Probe(bus, addr) {
			found = append(found, addr)
		}
	}
	return found
}

// Scan opens the numbered bus and runs ScanBus on it.
func Scan(device int) ([]uint16, error) {
	bus, err := i2creg.Open(strconv.Itoa(device))
	if err != nil {
		return nil, err
	}
	defer bus.Close()

	return ScanBus(bus), nil
}
