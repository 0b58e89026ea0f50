package bus

import (
	"time"

	"github.com/sarchlab/ictest/hooking"
)

// Hook positions for observing bus transactions.
var (
	// HookPosRead triggers after a read transaction completes. The item is a
	// Transaction.
	HookPosRead = &hooking.HookPos{Name: "BusRead"}

	// HookPosWrite triggers after a write transaction completes. The item is
	// a Transaction.
	HookPosWrite = &hooking.HookPos{Name: "BusWrite"}
)

// A Transaction describes one completed single-byte bus access.
type Transaction struct {
	Kind    string
	Address uint16
	Data    byte
}

// A Controller owns the address bus and the data-bus direction for one
// device at a time. It performs timed single-byte read/write transactions
// and guarantees the data bus returns to Input on every exit path, so the
// tester can never end up driving against the device.
type Controller struct {
	hooking.HookableBase

	plane    Backplane
	timer    HoldTimer
	geometry Geometry

	// forcedBit, when >= 0, is an address line that must be driven high for
	// the device to be enabled at all. Narrow parts repurpose a high address
	// pin as a secondary chip enable.
	forcedBit int

	writePulse time.Duration
	accessHold time.Duration
}

// SetAddress drives the full address word across the two 8-bit halves of the
// address bus, applying the forced-bit correction when the geometry requires
// it.
func (c *Controller) SetAddress(addr uint16) {
	if c.forcedBit >= 0 && c.geometry.AddressBits <= c.forcedBit {
		addr |= 1 << c.forcedBit
	}

	c.plane.SetAddressLow(byte(addr & 0xFF))
	c.plane.SetAddressHigh(byte(addr >> 8))
}

// WriteByte performs one timed write transaction. The value is latched by
// the device on the rising edge of write-enable.
func (c *Controller) WriteByte(addr uint16, data byte) {
	c.SetAddress(addr)

	c.plane.SetDataDirection(Output)
	// The bus must be back to Input on every path out of the write window.
	defer c.plane.SetDataDirection(Input)

	c.plane.DriveData(data)

	c.plane.Assert(ChipSelect)
	c.plane.Assert(WriteEnable)

	c.timer.Hold(c.writePulse)

	c.plane.Deassert(WriteEnable)
	c.plane.Deassert(ChipSelect)

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosWrite,
		Item:   Transaction{Kind: "write", Address: addr, Data: data},
	})
}

// ReadByte performs one timed read transaction and returns the sampled byte.
func (c *Controller) ReadByte(addr uint16) byte {
	c.SetAddress(addr)

	c.plane.SetDataDirection(Input)

	c.plane.Assert(ChipSelect)
	c.plane.Assert(OutputEnable)

	c.timer.Hold(c.accessHold)

	data := c.plane.SampleData()

	c.plane.Deassert(OutputEnable)
	c.plane.Deassert(ChipSelect)

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosRead,
		Item:   Transaction{Kind: "read", Address: addr, Data: data},
	})

	return data
}

// SafeIdle returns the bus to its safe default: data bus sampled, all
// control lines inactive. Called on strategy configuration and on reset.
func (c *Controller) SafeIdle() {
	c.plane.SetDataDirection(Input)
	c.plane.Deassert(WriteEnable)
	c.plane.Deassert(OutputEnable)
	c.plane.Deassert(ChipSelect)
}

// Geometry returns the active device geometry.
func (c *Controller) Geometry() Geometry {
	return c.geometry
}
