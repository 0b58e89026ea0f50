// Package clock derives an arbitrary output frequency from a fixed reference
// clock by programming a hardware counter/comparator.
package clock

import "math"

// maxCompare is the largest value the 16-bit compare register can hold.
const maxCompare = 65536

// dividers lists the selectable reference-clock dividers, smallest first.
// The smallest divider that keeps the compare value in range wins, as it has
// the least quantization error at high frequencies.
var dividers = [5]uint32{1, 8, 64, 256, 1024}

// A Generator emits a square wave at a requested frequency by selecting a
// divider and a compare value for a hardware counter.
type Generator struct {
	counter Counter
	ref     Freq

	frequency Freq
	divider   uint32
	running   bool
}

// Builder builds clock generators.
type Builder struct {
	counter Counter
	ref     Freq
}

// MakeBuilder returns a new Builder with a 16 MHz reference clock.
func MakeBuilder() Builder {
	return Builder{
		ref: 16 * MHz,
	}
}

// WithCounter sets the hardware counter the generator programs.
func (b Builder) WithCounter(c Counter) Builder {
	b.counter = c
	return b
}

// WithRefClock sets the reference clock frequency.
func (b Builder) WithRefClock(ref Freq) Builder {
	b.ref = ref
	return b
}

// Build builds the generator in the stopped, unconfigured state.
func (b Builder) Build() *Generator {
	counter := b.counter
	if counter == nil {
		counter = NewSimCounter()
	}

	return &Generator{
		counter: counter,
		ref:     b.ref,
	}
}

// Configure computes and stores a divider/compare pair for the requested
// frequency without starting output. Frequencies below what the largest
// divider can represent are clamped to the minimum achievable frequency
// rather than rejected; the hardware only supports positive-integer
// approximations.
func (g *Generator) Configure(frequency Freq) {
	g.Stop()

	divider, compare := g.selectDivider(frequency)
	g.divider = divider

	g.counter.SetToggleMode()
	g.counter.SetCompare(compare)

	g.frequency = frequency
}

// selectDivider tries each divider from smallest to largest and accepts the
// first one whose compare value fits the 16-bit register.
func (g *Generator) selectDivider(frequency Freq) (uint32, uint16) {
	for _, d := range dividers {
		calc := math.Round(float64(g.ref) / (2 * float64(d) * float64(frequency)))
		if calc >= 1 && calc <= maxCompare {
			return d, uint16(calc - 1)
		}
	}

	// Frequency too low for any divider. Saturate at the slowest output the
	// hardware can make.
	return dividers[len(dividers)-1], maxCompare - 1
}

// Start selects the stored divider on the counter, which begins output. The
// compare and mode configuration from Configure is left untouched.
func (g *Generator) Start() {
	g.counter.SetRunning(g.divider)
	g.running = true
}

// Stop halts the counter and forces the output pin to its inactive level.
// Safe to call repeatedly.
func (g *Generator) Stop() {
	g.counter.Halt()
	g.counter.DriveOutputLow()
	g.running = false
}

// Frequency returns the last configured frequency, nominal rather than
// measured, or 0 if Configure was never called.
func (g *Generator) Frequency() Freq {
	return g.frequency
}

// Running reports whether the generator has been started.
func (g *Generator) Running() bool {
	return g.running
}
