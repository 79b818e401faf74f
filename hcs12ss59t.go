package vfdclock

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Wiring defaults for the NE-HCS12SS59T module on the external QWIIC bus.
const (
	DefaultBus   = 1
	DefaultAddr  = 0x10
	DefaultSpeed = 100 * physic.KiloHertz
)

// CharCount is the number of character cells on the display.
const CharCount = 12

// MaxBrightness is the highest value the driver ever writes to the
// brightness register. The register accepts 0-255, but sustained levels
// above this drastically shorten the tube's lifespan.
const MaxBrightness = 110

// Register map of the display controller.
const (
	hcsRegControl    = 0x00
	hcsRegOffset     = 0x01
	hcsRegScrollLow  = 0x04
	hcsRegScrollHigh = 0x05
	hcsRegBrightness = 0x06
	hcsRegText       = 0x0A
)

// Control register bits.
const (
	hcsCtrlEnable = 1 << 0
	hcsCtrlTest   = 1 << 1
	hcsCtrlLED    = 1 << 2
)

type hcs12ss59t struct {
	c Conn
}

// HCS12SS59T is a driver for the NE-HCS12SS59T 12-character I²C VFD module.
func HCS12SS59T(c Conn, config *Config) (Display, error) {
	d := &hcs12ss59t{c: c}

	if config == nil {
		config = &Config{}
	}
	brightness := config.Brightness
	if brightness == 0 || brightness > MaxBrightness {
		brightness = MaxBrightness
	}

	if err := d.init(brightness); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *hcs12ss59t) String() string {
	return fmt.Sprintf("HCS12SS59T VFD %d×1", CharCount)
}

func (d *hcs12ss59t) init(brightness uint8) (err error) {
	if err = d.c.Command(hcsRegControl, hcsCtrlEnable); err != nil {
		return
	}
	return d.c.Command(hcsRegBrightness, brightness)
}

// WriteText renders text, padded or truncated to exactly CharCount bytes,
// in a single transaction on the text register.
func (d *hcs12ss59t) WriteText(text string) error {
	return d.c.Command(hcsRegText, render(text)...)
}

func (d *hcs12ss59t) Show(show bool) error {
	if show {
		return d.c.Command(hcsRegControl, hcsCtrlEnable)
	}
	return d.c.Command(hcsRegControl, 0)
}

func (d *hcs12ss59t) SetBrightness(level uint8) error {
	if level > MaxBrightness {
		level = MaxBrightness
	}
	return d.c.Command(hcsRegBrightness, level)
}

// Close blanks the display, clears the control register and releases the
// bus. A second Close is a no-op.
func (d *hcs12ss59t) Close() error {
	if d.c == nil {
		return nil
	}
	_ = d.WriteText("")
	_ = d.Show(false)
	err := d.c.Close()
	d.c = nil
	return err
}

// render pads or truncates text to exactly CharCount ASCII bytes.
func render(text string) []byte {
	buf := make([]byte, CharCount)
	n := copy(buf, text)
	for i := n; i < CharCount; i++ {
		buf[i] = ' '
	}
	return buf
}
