package session

import (
	"log"

	"github.com/rs/xid"

	"github.com/sarchlab/ictest/bus"
	"github.com/sarchlab/ictest/clock"
	"github.com/sarchlab/ictest/device"
	"github.com/sarchlab/ictest/device/sram"
	"github.com/sarchlab/ictest/monitor"
	"github.com/sarchlab/ictest/pattern"
	"github.com/sarchlab/ictest/record"
	"github.com/sarchlab/ictest/strategy"
	"github.com/sarchlab/ictest/strategy/mos6502test"
	"github.com/sarchlab/ictest/strategy/sramtest"
	"github.com/sarchlab/ictest/strategy/z80test"
)

// narrowEnablePin is the address line narrow packages repurpose as a
// secondary chip enable.
const narrowEnablePin = 13

// Builder builds sessions.
type Builder struct {
	size      uint32
	refClock  clock.Freq
	timer     bus.HoldTimer
	logger    *log.Logger
	traceFile string

	monitorOn   bool
	monitorPort int
	openBrowser bool
}

// MakeBuilder creates a new Builder for a 32 KiB device socket.
func MakeBuilder() Builder {
	return Builder{
		size:     bus.Size32K,
		refClock: 16 * clock.MHz,
	}
}

// WithSize sets the memory-device size in bytes.
func (b Builder) WithSize(size uint32) Builder {
	b.size = size
	return b
}

// WithRefClock sets the reference clock for the generator.
func (b Builder) WithRefClock(f clock.Freq) Builder {
	b.refClock = f
	return b
}

// WithHoldTimer overrides the bus hold timer. The stock session drives a
// simulated socket that latches instantly, so it defaults to skipping
// holds.
func (b Builder) WithHoldTimer(t bus.HoldTimer) Builder {
	b.timer = t
	return b
}

// WithEventLogger attaches a logger that renders run events.
func (b Builder) WithEventLogger(logger *log.Logger) Builder {
	b.logger = logger
	return b
}

// WithTraceFile enables the bus-transaction trace, written to the given
// SQLite file.
func (b Builder) WithTraceFile(path string) Builder {
	b.traceFile = path
	return b
}

// WithMonitorPort enables the monitoring server on the given port.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorOn = true
	b.monitorPort = port
	return b
}

// WithOpenDashboard opens the status page once the server is up.
func (b Builder) WithOpenDashboard() Builder {
	b.openBrowser = true
	return b
}

// Build builds the session. The size must have been validated by the
// command layer already; an unsupported size here is a programmer error.
func (b Builder) Build() *Session {
	geometry, err := bus.MakeGeometry(b.size)
	if err != nil {
		log.Panic(err)
	}

	s := &Session{
		id:         xid.New().String(),
		dispatcher: strategy.NewDispatcher(),
	}

	s.chip = sram.NewChip(geometry)

	timer := b.timer
	if timer == nil {
		timer = bus.NopTimer{}
	}

	busBuilder := bus.MakeBuilder().
		WithBackplane(s.chip).
		WithGeometry(geometry).
		WithHoldTimer(timer)
	if geometry.SizeBytes <= bus.Size8K {
		busBuilder = busBuilder.WithForcedBit(narrowEnablePin)
	}
	s.controller = busBuilder.Build()

	s.engine = pattern.MakeBuilder().
		WithController(s.controller).
		Build()

	s.generator = clock.MakeBuilder().
		WithRefClock(b.refClock).
		Build()

	resetPin := device.NewResetPin()

	s.sramStrategy = sramtest.MakeBuilder().
		WithController(s.controller).
		WithEngine(s.engine).
		Build()
	s.z80Strategy = z80test.MakeBuilder().
		WithClock(s.generator).
		WithResetLine(resetPin).
		WithHoldTimer(timer).
		Build()
	s.mosStrategy = mos6502test.MakeBuilder().
		WithClock(s.generator).
		WithResetLine(resetPin).
		WithHoldTimer(timer).
		Build()

	if b.logger != nil {
		logHook := pattern.NewLogHook(b.logger)
		s.engine.AcceptHook(logHook)
		s.z80Strategy.AcceptHook(logHook)
		s.mosStrategy.AcceptHook(logHook)
	}

	if b.traceFile != "" {
		s.recorder = record.NewRecorder(b.traceFile)
		s.controller.AcceptHook(record.NewBusTracer(s.recorder))
	}

	if b.monitorOn {
		s.monitor = monitor.NewMonitor().WithPortNumber(b.monitorPort)
		s.monitor.RegisterStatusSource(s.Status)
		s.engine.AcceptHook(monitor.NewRunHook(s.monitor))
		s.monitor.StartServer(b.openBrowser)
	}

	return s
}
