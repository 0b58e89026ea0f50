// Package strategy defines the capability contract every testable device
// class satisfies, and the dispatcher that binds one of them at a time.
package strategy

// A Strategy fully contains the behavior of one device class, including any
// bus-signal-polarity differences from other classes. Adding a device type
// means adding a Strategy; the dispatcher never learns which one is bound.
type Strategy interface {
	// ConfigurePins establishes the safe default bus state for this device
	// class: direction and idle control-line levels.
	ConfigurePins()

	// Reset runs the device's safing sequence. Devices without a reset line
	// re-assert their safe control-line defaults.
	Reset()

	// RunTests executes the strategy's default test suite and reports
	// whether it passed.
	RunTests() bool

	// Name identifies the device class.
	Name() string
}

// A ResetLine is the dedicated reset pin of a CPU socket.
type ResetLine interface {
	// Assert drives the pin to its active level.
	Assert()

	// Release returns the pin to its inactive level.
	Release()
}
