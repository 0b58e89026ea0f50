// Package session wires one tester instance together: the simulated socket,
// the bus controller, the pattern engine, the clock generator and the
// strategy dispatcher, owned by a single Session object that is constructed
// once and passed around explicitly.
package session

import (
	"fmt"

	"github.com/sarchlab/ictest/bus"
	"github.com/sarchlab/ictest/clock"
	"github.com/sarchlab/ictest/command"
	"github.com/sarchlab/ictest/device/sram"
	"github.com/sarchlab/ictest/monitor"
	"github.com/sarchlab/ictest/pattern"
	"github.com/sarchlab/ictest/record"
	"github.com/sarchlab/ictest/strategy"
	"github.com/sarchlab/ictest/strategy/mos6502test"
	"github.com/sarchlab/ictest/strategy/sramtest"
	"github.com/sarchlab/ictest/strategy/z80test"
)

// A Session owns every component of one tester instance.
type Session struct {
	id string

	chip       *sram.Chip
	controller *bus.Controller
	engine     *pattern.Engine
	generator  *clock.Generator
	dispatcher *strategy.Dispatcher

	sramStrategy *sramtest.Comp
	z80Strategy  *z80test.Comp
	mosStrategy  *mos6502test.Comp

	recorder record.DataRecorder
	monitor  *monitor.Monitor
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Chip exposes the simulated device, mainly for fault injection.
func (s *Session) Chip() *sram.Chip {
	return s.chip
}

// Monitor returns the monitoring server, or nil when monitoring is off.
func (s *Session) Monitor() *monitor.Monitor {
	return s.monitor
}

// Bind selects a device mode, replacing any previous binding.
func (s *Session) Bind(mode strategy.Mode) error {
	switch mode {
	case strategy.SRAM:
		s.dispatcher.Bind(s.sramStrategy, mode)
	case strategy.Z80:
		s.dispatcher.Bind(s.z80Strategy, mode)
	case strategy.MOS6502:
		s.dispatcher.Bind(s.mosStrategy, mode)
	default:
		return fmt.Errorf("cannot bind mode %s", mode)
	}

	return nil
}

// Mode returns the active mode tag.
func (s *Session) Mode() strategy.Mode {
	return s.dispatcher.Mode()
}

// RunTests runs the bound strategy's default suite.
func (s *Session) RunTests() (bool, error) {
	bound := s.dispatcher.Strategy()
	if bound == nil {
		return false, fmt.Errorf("no device mode selected")
	}

	return bound.RunTests(), nil
}

// RunSelection runs a specific test selection. Selections beyond the
// default suite only apply to the memory-device family.
func (s *Session) RunSelection(sel command.Selection) (bool, error) {
	if s.dispatcher.Strategy() == nil {
		return false, fmt.Errorf("no device mode selected")
	}

	defaultSuite := sel.Test == 0 && !sel.Random && sel.Mode == pattern.Quick
	if s.dispatcher.Mode() != strategy.SRAM {
		if !defaultSuite {
			return false, fmt.Errorf(
				"test selection only applies to SRAM mode")
		}
		return s.dispatcher.Strategy().RunTests(), nil
	}

	return s.sramStrategy.Run(sel.Test, sel.Random, sel.Mode), nil
}

// Reset runs the bound strategy's safing sequence.
func (s *Session) Reset() error {
	bound := s.dispatcher.Strategy()
	if bound == nil {
		return fmt.Errorf("no device mode selected")
	}

	bound.Reset()

	return nil
}

// ConfigureClock stores a divider/compare pair for the given frequency.
func (s *Session) ConfigureClock(f clock.Freq) {
	s.generator.Configure(f)
}

// StartClock starts clock output.
func (s *Session) StartClock() {
	s.generator.Start()
}

// StopClock stops clock output. Idempotent.
func (s *Session) StopClock() {
	s.generator.Stop()
}

// Clock returns the clock generator.
func (s *Session) Clock() *clock.Generator {
	return s.generator
}

// Status snapshots the session for the monitoring server.
func (s *Session) Status() monitor.Status {
	return monitor.Status{
		Session:      s.id,
		Mode:         s.dispatcher.Mode().String(),
		ClockHz:      float64(s.generator.Frequency()),
		ClockRunning: s.generator.Running(),
	}
}

// Flush writes any buffered trace rows.
func (s *Session) Flush() {
	if s.recorder != nil {
		s.recorder.Flush()
	}
}
