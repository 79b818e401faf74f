// Package vfdclock drives a 12-character I²C vacuum-fluorescent display and
// renders the current wall-clock time on it.
package vfdclock

// Display is a character display.
type Display interface {
	String() string

	// Close blanks and powers down the display, then releases the bus.
	// Safe to call more than once.
	Close() error

	// WriteText renders text on the display. Shorter text is padded with
	// spaces, longer text is truncated to CharCount characters.
	WriteText(text string) error

	// Show toggles the display on or off.
	Show(bool) error

	// SetBrightness adjusts the brightness level, capped at MaxBrightness.
	SetBrightness(level uint8) error
}

// Config is the display configuration.
type Config struct {
	// Brightness is the initial brightness level. Zero selects
	// MaxBrightness; values above MaxBrightness are clamped to it.
	Brightness uint8
}
