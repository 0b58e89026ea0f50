package pattern

import (
	"fmt"
	"log"

	"github.com/sarchlab/ictest/hooking"
)

// Hook positions for observing a test run. A run reports one TestStart, zero
// or more Progress and Info items, at most one Mismatch, and exactly one
// Result.
var (
	HookPosTestStart = &hooking.HookPos{Name: "TestStart"}
	HookPosProgress  = &hooking.HookPos{Name: "Progress"}
	HookPosInfo      = &hooking.HookPos{Name: "Info"}
	HookPosMismatch  = &hooking.HookPos{Name: "Mismatch"}
	HookPosResult    = &hooking.HookPos{Name: "Result"}
)

// Mode selects the address coverage of a run.
type Mode int

// Quick samples addresses strategically; Full tests every address.
const (
	Quick Mode = iota
	Full
)

func (m Mode) String() string {
	if m == Full {
		return "FULL"
	}
	return "QUICK"
}

// TestStart announces that a test began.
type TestStart struct {
	TestID int
	Name   string
	Mode   Mode
}

// Progress reports how far a long-running phase has come.
type Progress struct {
	Label   string
	Current uint64
	Total   uint64
}

// Info carries a free-form diagnostic, such as the bus line implicated by a
// walking-ones failure.
type Info struct {
	Text string
}

// Mismatch is the failure locus of a test: the first address where the read
// value differed from what was written.
type Mismatch struct {
	TestID   int
	Address  uint16
	Expected byte
	Actual   byte
}

// Outcome is the terminal result of one test run.
type Outcome struct {
	TestID  int
	Mode    Mode
	Passed  bool
	Failure *Mismatch
}

// A LogHook renders run events to a standard logger, in the shape the
// serial console of the tester prints them.
type LogHook struct {
	logger *log.Logger
}

// NewLogHook creates a LogHook that writes to the given logger.
func NewLogHook(logger *log.Logger) *LogHook {
	return &LogHook{logger: logger}
}

// Func renders one event.
func (h *LogHook) Func(ctx hooking.HookCtx) {
	switch item := ctx.Item.(type) {
	case TestStart:
		h.logger.Printf("[INFO] Test %d (%s) - %s mode",
			item.TestID, item.Name, item.Mode)
	case Progress:
		percent := item.Current * 100 / item.Total
		h.logger.Printf("[INFO] %s: %d%%", item.Label, percent)
	case Info:
		h.logger.Printf("[INFO] %s", item.Text)
	case Mismatch:
		h.logger.Printf(
			"[ERROR] Test %d FAIL - Addr: 0x%04X Expected: 0x%02X Got: 0x%02X",
			item.TestID, item.Address, item.Expected, item.Actual)
	case Outcome:
		verdict := "PASSED"
		tag := "[OK]"
		if !item.Passed {
			verdict = "FAILED"
			tag = "[ERROR]"
		}
		h.logger.Printf("%s Test %d (%s) - %s",
			tag, item.TestID, TestName(item.TestID), verdict)
	default:
		h.logger.Printf("[INFO] %s", fmt.Sprint(ctx.Item))
	}
}
