package vfdclock

import (
	"context"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
)

// RunContext adapts a context.Context to the plugin Context contract. It is
// what a standalone host (cmd/vfdclock) hands to the plugin; an embedded
// host provides its own implementation.
type RunContext struct {
	ctx   context.Context
	clock clockwork.Clock
	log   *log.Logger
}

func NewRunContext(ctx context.Context) *RunContext {
	return &RunContext{
		ctx:   ctx,
		clock: clockwork.NewRealClock(),
		log:   log.Default(),
	}
}

func (c *RunContext) ShouldStop() bool {
	return c.ctx.Err() != nil
}

// Delay sleeps cooperatively, returning early when the context is canceled.
func (c *RunContext) Delay(d time.Duration) {
	select {
	case <-c.ctx.Done():
	case <-c.clock.After(d):
	}
}

func (c *RunContext) Logf(tag, format string, args ...any) {
	c.log.Printf("["+tag+"] "+format, args...)
}

func (c *RunContext) Errorf(tag, format string, args ...any) {
	c.log.Printf("["+tag+"] error: "+format, args...)
}
