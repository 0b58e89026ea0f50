package pattern

// A SamplePolicy decides which addresses participate in a Quick run. The
// thresholds are configuration, not a fault-coverage guarantee: the policy
// trades completeness for latency, and Full mode bypasses it entirely.
type SamplePolicy struct {
	// EdgeWindow addresses at each end of the space are always tested;
	// boundary faults are cheap to catch.
	EdgeWindow uint16

	// Stride includes every Stride-th address for uniform coverage.
	Stride uint16
}

// DefaultSamplePolicy matches the tester's stock QUICK coverage.
func DefaultSamplePolicy() SamplePolicy {
	return SamplePolicy{
		EdgeWindow: 512,
		Stride:     128,
	}
}

// Includes reports whether an address participates in a Quick run over an
// address space ending at maxAddress. Power-of-two addresses are always
// included, aligning with the address-line isolation test.
func (p SamplePolicy) Includes(addr, maxAddress uint16) bool {
	if addr < p.EdgeWindow {
		return true
	}

	if addr > maxAddress-p.EdgeWindow {
		return true
	}

	if addr&(addr-1) == 0 {
		return true
	}

	if addr%p.Stride == 0 {
		return true
	}

	return false
}
