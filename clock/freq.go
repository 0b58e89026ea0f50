package clock

import (
	"log"
	"math"
)

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time between two consecutive rising edges, in seconds.
func (f Freq) Period() float64 {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}
	return 1.0 / float64(f)
}

// Cycle converts a duration in seconds to the number of full cycles that fit
// in it.
func (f Freq) Cycle(seconds float64) uint64 {
	if math.IsNaN(seconds) {
		log.Panic("invalid duration")
	}
	return uint64(math.Round(seconds * float64(f)))
}
