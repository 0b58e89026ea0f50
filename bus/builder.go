package bus

import (
	"log"
	"time"
)

// Builder builds bus controllers.
type Builder struct {
	plane      Backplane
	timer      HoldTimer
	geometry   Geometry
	forcedBit  int
	writePulse time.Duration
	accessHold time.Duration
}

// MakeBuilder returns a new Builder.
//
// The default hold of 1us on both edges is a safety margin well above the
// ~70ns pulse and access specs of the slowest supported parts.
func MakeBuilder() Builder {
	return Builder{
		forcedBit:  -1,
		writePulse: time.Microsecond,
		accessHold: time.Microsecond,
	}
}

// WithBackplane sets the electrical backplane the controller drives.
func (b Builder) WithBackplane(plane Backplane) Builder {
	b.plane = plane
	return b
}

// WithHoldTimer sets the timer used for pulse-width and access-time holds.
func (b Builder) WithHoldTimer(timer HoldTimer) Builder {
	b.timer = timer
	return b
}

// WithGeometry sets the geometry of the device in the socket.
func (b Builder) WithGeometry(g Geometry) Builder {
	b.geometry = g
	return b
}

// WithForcedBit marks an address line that must be held high to enable the
// device. Used for parts whose address space is narrower than the bus.
func (b Builder) WithForcedBit(bit int) Builder {
	b.forcedBit = bit
	return b
}

// WithWritePulse sets the minimum write-enable pulse width.
func (b Builder) WithWritePulse(d time.Duration) Builder {
	b.writePulse = d
	return b
}

// WithAccessHold sets the minimum hold before sampling on a read.
func (b Builder) WithAccessHold(d time.Duration) Builder {
	b.accessHold = d
	return b
}

// Build builds the controller and puts the bus in its safe idle state.
func (b Builder) Build() *Controller {
	if b.plane == nil {
		log.Panic("bus controller requires a backplane")
	}

	timer := b.timer
	if timer == nil {
		timer = SpinTimer{}
	}

	c := &Controller{
		plane:      b.plane,
		timer:      timer,
		geometry:   b.geometry,
		forcedBit:  b.forcedBit,
		writePulse: b.writePulse,
		accessHold: b.accessHold,
	}

	c.SafeIdle()

	return c
}
