package strategy

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubStrategy struct {
	name       string
	configured int
	resets     int
	runs       int
}

func (s *stubStrategy) ConfigurePins() { s.configured++ }
func (s *stubStrategy) Reset()         { s.resets++ }
func (s *stubStrategy) RunTests() bool { s.runs++; return true }
func (s *stubStrategy) Name() string   { return s.name }

var _ = Describe("Dispatcher", func() {
	var d *Dispatcher

	BeforeEach(func() {
		d = NewDispatcher()
	})

	It("should start with nothing bound", func() {
		Expect(d.Strategy()).To(BeNil())
		Expect(d.Mode()).To(Equal(None))
	})

	It("should configure the bus when binding", func() {
		s := &stubStrategy{name: "SRAM"}

		d.Bind(s, SRAM)

		Expect(d.Strategy()).To(BeIdenticalTo(s))
		Expect(d.Mode()).To(Equal(SRAM))
		Expect(s.configured).To(Equal(1))
	})

	It("should replace the binding wholesale on a mode switch", func() {
		first := &stubStrategy{name: "Z80"}
		second := &stubStrategy{name: "SRAM"}

		d.Bind(first, Z80)
		d.Bind(second, SRAM)

		Expect(d.Strategy()).To(BeIdenticalTo(second))
		Expect(d.Mode()).To(Equal(SRAM))
	})

	It("should clear the binding", func() {
		d.Bind(&stubStrategy{}, Z80)

		d.Clear()

		Expect(d.Strategy()).To(BeNil())
		Expect(d.Mode()).To(Equal(None))
	})

	It("should name every mode", func() {
		Expect(None.String()).To(Equal("NONE"))
		Expect(Z80.String()).To(Equal("Z80"))
		Expect(MOS6502.String()).To(Equal("6502"))
		Expect(SRAM.String()).To(Equal("SRAM"))
	})
})
