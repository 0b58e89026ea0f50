package strategy

// Mode tags which device class is currently bound.
type Mode int

// The selectable modes.
const (
	None Mode = iota
	Z80
	MOS6502
	SRAM
)

func (m Mode) String() string {
	switch m {
	case Z80:
		return "Z80"
	case MOS6502:
		return "6502"
	case SRAM:
		return "SRAM"
	default:
		return "NONE"
	}
}

// A Dispatcher holds at most one active strategy and its mode tag. The
// binding is replaced wholesale on a mode switch, never partially mutated.
type Dispatcher struct {
	current Strategy
	mode    Mode
}

// NewDispatcher creates a dispatcher with nothing bound.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Bind replaces the active binding and asks the new strategy to put the bus
// in its safe default state.
func (d *Dispatcher) Bind(s Strategy, mode Mode) {
	d.current = s
	d.mode = mode

	s.ConfigurePins()
}

// Clear drops the active binding.
func (d *Dispatcher) Clear() {
	d.current = nil
	d.mode = None
}

// Strategy returns the bound strategy, or nil.
func (d *Dispatcher) Strategy() Strategy {
	return d.current
}

// Mode returns the active mode tag.
func (d *Dispatcher) Mode() Mode {
	return d.mode
}
