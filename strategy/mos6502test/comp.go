// Package mos6502test implements the 6502 CPU strategy. Unlike the Z80, the
// 6502 requires a live clock during reset: the part samples /RES on clock
// edges, so the strategy starts the clock before asserting reset rather
// than after.
package mos6502test

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

// The 6502 wants /RES held low for at least two clock cycles after power is
// stable.
const resetHoldCycles = 3

// maxClock is the fastest supported part (WDC 65C02 at 2 MHz socket rating).
const maxClock = 2 * clock.MHz

// Comp is the 6502 testing strategy.
type Comp struct {
	hooking.HookableBase

	clock *clock.Generator
	reset strategy.ResetLine
	timer bus.HoldTimer
}

// Builder builds 6502 strategies.
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

// WithResetLine sets the /RES pin driver.
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
		log.Panic("6502 strategy requires a clock and a reset line")
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

// ConfigurePins holds the CPU in reset so it cannot drive the bus.
func (c *Comp) ConfigurePins() {
	c.reset.Assert()
}

// Reset asserts /RES with the clock running, holds it across the required
// edges, then releases it.
func (c *Comp) Reset() {
	restart := !c.clock.Running() && c.clock.Frequency() != 0
	if restart {
		c.clock.Start()
	}

	c.reset.Assert()
	c.timer.Hold(c.holdDuration())
	c.reset.Release()

	if restart {
		c.clock.Stop()
	}
}

func (c *Comp) holdDuration() time.Duration {
	f := c.clock.Frequency()
	if f == 0 {
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
		c.info(fmt.Sprintf("Clock %.0f Hz exceeds the 2 MHz 6502 limit", float64(f)))
		passed = false
	case !c.clock.Running():
		c.info("Clock configured but not running")
		passed = false
	}

	if passed {
		c.Reset()
		c.info("6502 reset sequence complete")
	}

	return passed
}

// Name identifies the device class.
func (c *Comp) Name() string {
	return "6502"
}

func (c *Comp) info(text string) {
	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    pattern.HookPosInfo,
		Item:   pattern.Info{Text: text},
	})
}
