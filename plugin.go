package vfdclock

import (
	"time"

	"github.com/cavac/vfdclock/conn"
)

// Type describes the capability set a plugin exposes to its host.
type Type uint8

const (
	// TypeService plugins run a background service loop.
	TypeService Type = iota

	// TypeMenu plugins render entries in the host menu.
	TypeMenu
)

func (t Type) String() string {
	switch t {
	case TypeService:
		return "service"
	case TypeMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Info is the static plugin metadata reported to the host.
type Info struct {
	Name        string
	Slug        string
	Version     string
	Author      string
	Description string
	Type        Type
}

// Context is the host surface visible to a plugin during lifecycle and
// service calls.
type Context interface {
	// ShouldStop reports whether the host asked the service to stop.
	ShouldStop() bool

	// Delay blocks cooperatively for the given duration.
	Delay(time.Duration)

	// Logf and Errorf are fire-and-forget host logging.
	Logf(tag, format string, args ...any)
	Errorf(tag, format string, args ...any)
}

// Plugin is the minimal lifecycle contract every plugin satisfies.
type Plugin interface {
	Info() Info

	// Init acquires the plugin's resources. A non-nil error tells the host
	// to unload the plugin without running it.
	Init(Context) error

	// Cleanup releases resources. The host calls it exactly once, also
	// after a failed Init.
	Cleanup(Context)
}

// ServicePlugin is a Plugin that owns a background service loop.
type ServicePlugin interface {
	Plugin

	// Run blocks until the host stop signal is observed.
	Run(Context)
}

// scanBuses lists the buses probed during diagnostic startup scanning.
var scanBuses = []int{0, 1}

// ClockPlugin renders the wall-clock time on the VFD. It implements
// ServicePlugin.
type ClockPlugin struct {
	display Display

	openDisplay func() (Display, error)
	scan        func(device int) ([]uint16, error)
}

// New returns the clock plugin bound to the default bus wiring.
func New() *ClockPlugin {
	return &ClockPlugin{
		openDisplay: openDefaultDisplay,
		scan:        conn.Scan,
	}
}

func openDefaultDisplay() (Display, error) {
	c, err := OpenI2C(nil)
	if err != nil {
		return nil, err
	}
	d, err := HCS12SS59T(c, nil)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return d, nil
}

func (p *ClockPlugin) Info() Info {
	return Info{
		Name:        "VFD Clock",
		Slug:        "vfdclock",
		Version:     "1.0.0",
		Author:      "cavac",
		Description: "Displays clock on I2C VFD display",
		Type:        TypeService,
	}
}

// Init scans the buses for diagnostics, then opens the display. Only the
// open step can fail; scan misses are routine.
func (p *ClockPlugin) Init(ctx Context) error {
	for _, bus := range scanBuses {
		ctx.Logf(logTag, "scanning I2C bus %d for devices", bus)
		found, err := p.scan(bus)
		if err != nil {
			continue
		}
		for _, addr := range found {
			ctx.Logf(logTag, "  bus %d: found device at 0x%02X", bus, addr)
		}
	}

	d, err := p.openDisplay()
	if err != nil {
		ctx.Errorf(logTag, "failed to open display at 0x%02X on bus %d: %v", DefaultAddr, DefaultBus, err)
		return err
	}
	p.display = d

	ctx.Logf(logTag, "VFD clock plugin initialized")
	return nil
}

func (p *ClockPlugin) Run(ctx Context) {
	ctx.Logf(logTag, "VFD clock service starting")
	NewClockService(p.display).Run(ctx)
	ctx.Logf(logTag, "VFD clock service stopped")
}

// Cleanup powers down and releases the display. It is idempotent; the
// service loop usually has blanked the display already.
func (p *ClockPlugin) Cleanup(ctx Context) {
	if p.display != nil {
		if err := p.display.Close(); err != nil {
			ctx.Errorf(logTag, "display close failed: %v", err)
		}
		p.display = nil
	}
	ctx.Logf(logTag, "VFD clock plugin cleaned up")
}
