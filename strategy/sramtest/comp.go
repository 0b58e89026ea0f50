// Package sramtest implements the memory-device strategy: it drives the
// pattern engine over the bus controller against an SRAM in the socket.
package sramtest

import (
	"log"

	"github.com/sarchlab/ictest/bus"
	"github.com/sarchlab/ictest/pattern"
)

// Comp is the SRAM testing strategy.
type Comp struct {
	ctrl   *bus.Controller
	engine *pattern.Engine
}

// Builder builds SRAM strategies.
type Builder struct {
	ctrl   *bus.Controller
	engine *pattern.Engine
}

// MakeBuilder returns a new Builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithController sets the bus controller.
func (b Builder) WithController(c *bus.Controller) Builder {
	b.ctrl = c
	return b
}

// WithEngine sets the pattern engine.
func (b Builder) WithEngine(e *pattern.Engine) Builder {
	b.engine = e
	return b
}

// Build builds the strategy.
func (b Builder) Build() *Comp {
	if b.ctrl == nil || b.engine == nil {
		log.Panic("SRAM strategy requires a controller and an engine")
	}

	return &Comp{
		ctrl:   b.ctrl,
		engine: b.engine,
	}
}

// ConfigurePins puts the bus in the SRAM idle state: data bus sampled, all
// control lines inactive.
func (c *Comp) ConfigurePins() {
	c.ctrl.SafeIdle()
}

// Reset re-asserts the safe defaults. SRAM has no reset pin.
func (c *Comp) Reset() {
	c.ctrl.SafeIdle()
}

// RunTests runs the default suite: tests 1-6, sampled coverage.
func (c *Comp) RunTests() bool {
	return c.engine.RunSuite(false, pattern.Quick)
}

// Run executes a specific selection: a single test when testID is nonzero,
// otherwise the suite, optionally with the random test included.
func (c *Comp) Run(testID int, includeRandom bool, mode pattern.Mode) bool {
	if testID != 0 {
		return c.engine.Run(testID, mode)
	}
	return c.engine.RunSuite(includeRandom, mode)
}

// Name identifies the device class.
func (c *Comp) Name() string {
	return "SRAM"
}

// Engine exposes the pattern engine so observers can hook its events.
func (c *Comp) Engine() *pattern.Engine {
	return c.engine
}
