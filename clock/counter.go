package clock

// A Counter is the register-level view of a hardware counter/comparator that
// can toggle an output pin on compare match. The generator programs it; it
// free-runs on its own once a divider is selected, independent of software
// timing.
type Counter interface {
	// SetToggleMode puts the counter in clear-on-compare mode with the
	// output pin toggling on every compare match.
	SetToggleMode()

	// SetCompare writes the 16-bit compare register.
	SetCompare(value uint16)

	// SetRunning writes the divider select, which starts the counter.
	SetRunning(divider uint32)

	// Halt clears the control registers, stopping the counter. The compare
	// register is left untouched.
	Halt()

	// DriveOutputLow forces the output pin to its inactive level.
	DriveOutputLow()

	// Running reports whether a divider is currently selected.
	Running() bool
}

// SimCounter is a simulated counter used in place of real hardware.
type SimCounter struct {
	compare    uint16
	divider    uint32
	toggleMode bool
	outputHigh bool
}

// NewSimCounter creates a halted simulated counter.
func NewSimCounter() *SimCounter {
	return &SimCounter{}
}

// SetToggleMode puts the simulated counter in toggle-on-compare mode.
func (c *SimCounter) SetToggleMode() {
	c.toggleMode = true
}

// SetCompare writes the compare register.
func (c *SimCounter) SetCompare(value uint16) {
	c.compare = value
}

// SetRunning selects a divider and starts the counter.
func (c *SimCounter) SetRunning(divider uint32) {
	c.divider = divider
}

// Halt clears the control registers.
func (c *SimCounter) Halt() {
	c.divider = 0
	c.toggleMode = false
}

// DriveOutputLow forces the output pin low.
func (c *SimCounter) DriveOutputLow() {
	c.outputHigh = false
}

// Running reports whether the counter is counting.
func (c *SimCounter) Running() bool {
	return c.divider != 0
}

// Compare returns the value in the compare register.
func (c *SimCounter) Compare() uint16 {
	return c.compare
}

// Divider returns the selected divider, or 0 when halted.
func (c *SimCounter) Divider() uint32 {
	return c.divider
}

// OutputHigh reports the level of the output pin.
func (c *SimCounter) OutputHigh() bool {
	return c.outputHigh
}

// OutputFreq returns the square-wave frequency the counter would emit for a
// given reference clock, following f = ref / (2 * divider * (compare + 1)).
func (c *SimCounter) OutputFreq(ref Freq) Freq {
	if c.divider == 0 {
		return 0
	}
	return ref / Freq(2*uint64(c.divider)*(uint64(c.compare)+1))
}
