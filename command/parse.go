// Package command validates the caller-facing parameters before anything
// touches the hardware: device mode tags, memory sizes, test selections and
// clock frequencies. Rejections happen here, descriptively, with no partial
// state change.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/ictest/bus"
	"github.com/sarchlab/ictest/clock"
	"github.com/sarchlab/ictest/pattern"
	"github.com/sarchlab/ictest/strategy"
)

// The clock command accepts this inclusive frequency range.
const (
	MinClockFreq = 1 * clock.Hz
	MaxClockFreq = 8 * clock.MHz
)

// A Selection is a parsed test-selection parameter. Test 0 means the
// default suite.
type Selection struct {
	Test   int
	Mode   pattern.Mode
	Random bool
}

// ParseMode maps a device tag to a mode.
func ParseMode(tag string) (strategy.Mode, error) {
	switch strings.ToUpper(tag) {
	case "Z80":
		return strategy.Z80, nil
	case "6502":
		return strategy.MOS6502, nil
	case "SRAM", "62256":
		return strategy.SRAM, nil
	default:
		return strategy.None, fmt.Errorf(
			"invalid device type %q: must be Z80, 6502 or SRAM", tag)
	}
}

// ParseSize validates a memory-device size parameter.
func ParseSize(arg string) (uint32, error) {
	size, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: must be a number", arg)
	}

	if size != bus.Size8K && size != bus.Size32K {
		return 0, fmt.Errorf(
			"invalid size %d: must be %d or %d", size, bus.Size8K, bus.Size32K)
	}

	return uint32(size), nil
}

// ParseSelection parses a test-selection parameter list. No arguments means
// the suite of tests 1-6 in sampled mode. FULL escalates to exhaustive
// coverage, RANDOM includes test 7, and a bare integer 1-7 selects a single
// test. FULL composes with the others.
func ParseSelection(args []string) (Selection, error) {
	sel := Selection{Mode: pattern.Quick}

	for _, arg := range args {
		switch upper := strings.ToUpper(arg); upper {
		case "FULL":
			sel.Mode = pattern.Full
		case "RANDOM":
			sel.Random = true
		default:
			test, err := strconv.Atoi(arg)
			if err != nil {
				return Selection{}, fmt.Errorf(
					"invalid test selection %q: must be FULL, RANDOM or a "+
						"test number 1-%d", arg, pattern.NumTests)
			}
			if test < 1 || test > pattern.NumTests {
				return Selection{}, fmt.Errorf(
					"invalid test number %d (1-%d)", test, pattern.NumTests)
			}
			if sel.Test != 0 {
				return Selection{}, fmt.Errorf(
					"only one test number may be selected")
			}
			sel.Test = test
		}
	}

	if sel.Random && sel.Test != 0 {
		return Selection{}, fmt.Errorf(
			"RANDOM selects the full suite; it cannot combine with test %d",
			sel.Test)
	}

	return sel, nil
}

// ParseFrequency validates a clock-frequency parameter in Hz.
func ParseFrequency(arg string) (clock.Freq, error) {
	hz, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q: must be a number of Hz", arg)
	}

	f := clock.Freq(hz)
	if f < MinClockFreq || f > MaxClockFreq {
		return 0, fmt.Errorf(
			"frequency %d Hz out of range (1 Hz - 8 MHz)", hz)
	}

	return f, nil
}
