package z80test_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ictest/bus"
	"github.com/sarchlab/ictest/clock"
	"github.com/sarchlab/ictest/device"
	"github.com/sarchlab/ictest/strategy/z80test"
)

var _ = Describe("Comp", func() {
	var (
		generator *clock.Generator
		reset     *device.ResetPin
		comp      *z80test.Comp
	)

	BeforeEach(func() {
		generator = clock.MakeBuilder().Build()
		reset = device.NewResetPin()
		comp = z80test.MakeBuilder().
			WithClock(generator).
			WithResetLine(reset).
			WithHoldTimer(bus.NopTimer{}).
			Build()
	})

	It("should identify as Z80", func() {
		Expect(comp.Name()).To(Equal("Z80"))
	})

	It("should hold the CPU in reset when configured", func() {
		comp.ConfigurePins()

		Expect(reset.Asserted()).To(BeTrue())
	})

	It("should release reset at the end of the reset sequence", func() {
		generator.Configure(4 * clock.MHz)

		comp.Reset()

		Expect(reset.Asserted()).To(BeFalse())
		Expect(reset.AssertCount()).To(BeNumerically(">", 0))
	})

	It("should fail when the clock is not configured", func() {
		Expect(comp.RunTests()).To(BeFalse())
	})

	It("should fail when the clock is configured but stopped", func() {
		generator.Configure(4 * clock.MHz)

		Expect(comp.RunTests()).To(BeFalse())
	})

	It("should fail above the part's clock limit", func() {
		generator.Configure(10 * clock.MHz)
		generator.Start()

		Expect(comp.RunTests()).To(BeFalse())
	})

	It("should pass with a running clock in range", func() {
		generator.Configure(4 * clock.MHz)
		generator.Start()

		Expect(comp.RunTests()).To(BeTrue())
		Expect(reset.Asserted()).To(BeFalse())
	})
})
