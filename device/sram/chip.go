// Package sram simulates an asynchronous SRAM chip sitting in the tester's
// socket. The chip honors the electrical protocol rather than exposing its
// cells directly: it latches on the rising edge of write-enable and drives
// the data lines only while both chip-select and output-enable are active.
package sram

import (
	"log"

	"github.com/sarchlab/ictest/bus"
	"github.com/sarchlab/ictest/device"
)

// floating is the value sampled when the device is not driving the bus.
const floating = 0xFF

// A Chip is a simulated SRAM device attached to the backplane.
type Chip struct {
	cells *device.Storage

	addrMask uint16

	// enablePin, when >= 0, is the address line the package repurposes as a
	// secondary chip enable. The chip ignores the bus unless that line is
	// high.
	enablePin int

	addrLow, addrHigh byte
	direction         bus.Direction
	driven            byte

	selected     bool
	outputOn     bool
	writeAllowed bool

	// injected faults
	dataFaultBit int
	addrFaultBit int
	deadCells    map[uint16]byte
}

// NewChip creates a fault-free simulated chip of the given geometry. Parts
// of 8 KiB and below gate on the A13 pin, matching the pinout of the real
// narrow packages.
func NewChip(geometry bus.Geometry) *Chip {
	enablePin := -1
	if geometry.SizeBytes <= bus.Size8K {
		enablePin = 13
	}

	return &Chip{
		cells:        device.NewStorage(uint64(geometry.SizeBytes)),
		addrMask:     geometry.MaxAddress,
		enablePin:    enablePin,
		direction:    bus.Input,
		dataFaultBit: -1,
		addrFaultBit: -1,
		deadCells:    make(map[uint16]byte),
	}
}

// SetAddressLow latches address lines A0-A7.
func (c *Chip) SetAddressLow(value byte) {
	c.addrLow = value
}

// SetAddressHigh latches address lines A8-A15.
func (c *Chip) SetAddressHigh(value byte) {
	c.addrHigh = value
}

// SetDataDirection records which side is driving the data bus.
func (c *Chip) SetDataDirection(dir bus.Direction) {
	c.direction = dir
}

// DriveData records the value the tester is driving.
func (c *Chip) DriveData(value byte) {
	c.driven = value
}

// Assert pulls a control line active.
func (c *Chip) Assert(line bus.ControlLine) {
	switch line {
	case bus.ChipSelect:
		c.selected = true
	case bus.OutputEnable:
		c.outputOn = true
	case bus.WriteEnable:
		c.writeAllowed = true
	default:
		log.Panicf("unknown control line %d", line)
	}
}

// Deassert returns a control line inactive. The rising edge of write-enable
// latches the driven value into the addressed cell.
func (c *Chip) Deassert(line bus.ControlLine) {
	switch line {
	case bus.ChipSelect:
		c.selected = false
	case bus.OutputEnable:
		c.outputOn = false
	case bus.WriteEnable:
		if c.writeAllowed && c.selected && c.direction == bus.Output {
			c.latch()
		}
		c.writeAllowed = false
	default:
		log.Panicf("unknown control line %d", line)
	}
}

// SampleData returns what the data lines carry. The chip drives its cell
// contents only when enabled, selected and output-enabled; otherwise the
// lines float.
func (c *Chip) SampleData() byte {
	if !c.enabled() || !c.selected || !c.outputOn {
		return floating
	}

	addr := c.address()
	if c.addrFaultBit >= 0 {
		// Open address line between latch and decoder: reads decode with
		// the line low.
		addr &^= 1 << c.addrFaultBit
	}

	value, err := c.cells.ReadByte(uint64(addr))
	if err != nil {
		log.Panic(err)
	}

	if c.dataFaultBit >= 0 {
		value &^= 1 << c.dataFaultBit
	}

	return value
}

func (c *Chip) latch() {
	if !c.enabled() {
		return
	}

	addr := c.address()
	if _, dead := c.deadCells[addr]; dead {
		return
	}

	if err := c.cells.WriteByte(uint64(addr), c.driven); err != nil {
		log.Panic(err)
	}
}

func (c *Chip) address() uint16 {
	return (uint16(c.addrHigh)<<8 | uint16(c.addrLow)) & c.addrMask
}

func (c *Chip) enabled() bool {
	if c.enablePin < 0 {
		return true
	}
	lines := uint16(c.addrHigh)<<8 | uint16(c.addrLow)
	return lines&(1<<c.enablePin) != 0
}

// InjectDataFault makes one data line read back stuck low.
func (c *Chip) InjectDataFault(bit int) {
	c.dataFaultBit = bit
}

// InjectAddressFault opens one address line on the read decode path.
func (c *Chip) InjectAddressFault(bit int) {
	c.addrFaultBit = bit
}

// InjectDeadCell makes one cell ignore writes, holding the given value.
func (c *Chip) InjectDeadCell(addr uint16, held byte) {
	c.deadCells[addr] = held
	if err := c.cells.WriteByte(uint64(addr), held); err != nil {
		log.Panic(err)
	}
}

// ClearFaults removes all injected faults.
func (c *Chip) ClearFaults() {
	c.dataFaultBit = -1
	c.addrFaultBit = -1
	c.deadCells = make(map[uint16]uint8)
}
