// Package z80test implements the Z80 CPU strategy. The Z80 socket has no
// memory behind it; the tests check that the support circuitry around the
// part behaves: the clock is present and in range, and the active-low reset
// sequence holds long enough for the CPU to notice it.
package z80test

import (
	"fmt"
	"log"
	"time"

	"github.com/sarchlab/ictest/bus"
	"github.com/sarchlab/ictest/clock"
	"github.com/sarchlab/ictest/hooking"
	"github.com/sarchlab/ictest/pattern"
	"github.com/sarchlab/ictest/strategy"
)

// The Z80 datasheet wants /RESET low for at least three full clock periods.
const resetHoldCycles = 4

// maxClock is the fastest part the socket supports (Z80H).
const maxClock = 8 * clock.MHz

// Comp is the Z80 testing strategy.
type Comp struct {
	hooking.HookableBase

	clock *clock.Generator
	reset strategy.ResetLine
	timer bus.HoldTimer
}

// Builder builds Z80 strategies.
type Builder struct {
	clock *clock.Generator
	reset strategy.ResetLine
	timer bus.HoldTimer
}

// MakeBuilder returns a new Builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithClock sets the clock generator feeding the CPU socket.
func (b Builder) WithClock(g *clock.Generator) Builder {
	b.clock = g
	return b
}

// WithResetLine sets the /RESET pin driver.
func (b Builder) WithResetLine(r strategy.ResetLine) Builder {
	b.reset = r
	return b
}

// WithHoldTimer sets the timer used for the reset hold.
func (b Builder) WithHoldTimer(t bus.HoldTimer) Builder {
	b.timer = t
	return b
}

// Build builds the strategy.
func (b Builder) Build() *Comp {
	if b.clock == nil || b.reset == nil {
		log.Panic("Z80 strategy requires a clock and a reset line")
	}

	timer := b.timer
	if timer == nil {
		timer = bus.SpinTimer{}
	}

	return &Comp{
		clock: b.clock,
		reset: b.reset,
		timer: timer,
	}
}

// ConfigurePins leaves the CPU held in reset so it cannot drive the bus
// while the tester probes the socket.
func (c *Comp) ConfigurePins() {
	c.reset.Assert()
}

// Reset runs the full reset sequence: /RESET low for several clock periods,
// then released.
func (c *Comp) Reset() {
	c.reset.Assert()
	c.timer.Hold(c.holdDuration())
	c.reset.Release()
}

func (c *Comp) holdDuration() time.Duration {
	f := c.clock.Frequency()
	if f == 0 {
		// No clock configured; a generous fixed hold still resets the part.
		return time.Millisecond
	}
	return time.Duration(float64(resetHoldCycles) * f.Period() * float64(time.Second))
}

// RunTests checks the socket support circuitry and returns the verdict.
func (c *Comp) RunTests() bool {
	passed := true

	f := c.clock.Frequency()
	switch {
	case f == 0:
		c.info("Clock not configured; use CLOCK before testing a CPU")
		passed = false
	case f > maxClock:
		c.info(fmt.Sprintf("Clock %.0f Hz exceeds the 8 MHz Z80 limit", float64(f)))
		passed = false
	case !c.clock.Running():
		c.info("Clock configured but not running")
		passed = false
	}

	if passed {
		c.Reset()
		c.info("Z80 reset sequence complete")
	}

	return passed
}

// Name identifies the device class.
func (c *Comp) Name() string {
	return "Z80"
}

func (c *Comp) info(text string) {
	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    pattern.HookPosInfo,
		Item:   pattern.Info{Text: text},
	})
}
