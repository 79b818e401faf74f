package vfdclock

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// updateInterval is the delay between display updates. There is no drift
// correction; the effective period is the interval plus write latency.
const updateInterval = 500 * time.Millisecond

const logTag = "vfdclock"

// ClockService renders the current local time on a Display at a fixed
// cadence until the host signals a stop.
type ClockService struct {
	display Display
	clock   clockwork.Clock
}

func NewClockService(d Display) *ClockService {
	return &ClockService{
		display: d,
		clock:   clockwork.NewRealClock(),
	}
}

// Run drives the display until ctx reports a stop, then blanks and powers
// it down. Write failures are logged and absorbed; the next update
// overwrites whatever made it to the device.
func (s *ClockService) Run(ctx Context) {
	for !ctx.ShouldStop() {
		if err := s.display.WriteText(clockText(s.clock.Now())); err != nil {
			ctx.Errorf(logTag, "display write failed: %v", err)
		}
		ctx.Delay(updateInterval)
	}

	// Blank and power down here as well as in Close: the host may keep the
	// plugin loaded long after the service has returned.
	if err := s.display.WriteText(""); err != nil {
		ctx.Errorf(logTag, "display blank failed: %v", err)
	}
	if err := s.display.Show(false); err != nil {
		ctx.Errorf(logTag, "display power-down failed: %v", err)
	}
}

// clockText formats t as "  HH MM SS  ", exactly CharCount characters.
func clockText(t time.Time) string {
	return fmt.Sprintf("  %02d %02d %02d  ", t.Hour(), t.Minute(), t.Second())
}
