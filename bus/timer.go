package bus

import "time"

// A HoldTimer provides the minimum hold between control-line edges. The hold
// is a true blocking wait: the guarantee that a line stays asserted for at
// least the given duration must not be subject to scheduler jitter.
type HoldTimer interface {
	Hold(d time.Duration)
}

// SpinTimer busy-waits for the requested duration. Holds are
// microsecond-scale, so the burned cycles are cheaper than a sleep that may
// oversleep or be preempted.
type SpinTimer struct{}

// Hold busy-waits until at least d has elapsed.
func (SpinTimer) Hold(d time.Duration) {
	start := time.Now()
	for time.Since(start) < d {
	}
}

// NopTimer skips holds entirely. Simulated devices latch instantaneously, so
// tests use it to avoid burning wall-clock time.
type NopTimer struct{}

// Hold returns immediately.
func (NopTimer) Hold(time.Duration) {}
