// Package bus drives the parallel address/data bus that connects the tester
// to the device in the socket.
package bus

// Direction is the direction of the bidirectional data bus, seen from the
// tester.
type Direction int

// The data bus is either sampled (Input) or driven (Output) by the tester.
const (
	Input Direction = iota
	Output
)

// ControlLine identifies one of the active-low control lines on the socket.
type ControlLine int

// The control lines the tester drives.
const (
	ChipSelect ControlLine = iota
	OutputEnable
	WriteEnable
)

// Backplane is the electrical boundary between the controller and whatever
// sits in the socket. A simulated device implements it directly; real
// hardware would implement it over port registers.
type Backplane interface {
	// SetAddressLow drives address lines A0-A7.
	SetAddressLow(value byte)

	// SetAddressHigh drives address lines A8-A15.
	SetAddressHigh(value byte)

	// SetDataDirection turns the data bus between tester-driven and
	// device-driven.
	SetDataDirection(dir Direction)

	// DriveData places a value on the data lines. Only meaningful while the
	// direction is Output.
	DriveData(value byte)

	// SampleData reads the data lines. Only meaningful while the direction
	// is Input.
	SampleData() byte

	// Assert pulls a control line to its active level.
	Assert(line ControlLine)

	// Deassert returns a control line to its inactive level.
	Deassert(line ControlLine)
}
