package pattern_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ictest/pattern"
)

var _ = Describe("SamplePolicy", func() {
	policy := pattern.DefaultSamplePolicy()
	const maxAddress = 32767

	It("should include the first and last 512 addresses", func() {
		Expect(policy.Includes(0, maxAddress)).To(BeTrue())
		Expect(policy.Includes(511, maxAddress)).To(BeTrue())
		Expect(policy.Includes(maxAddress, maxAddress)).To(BeTrue())
		Expect(policy.Includes(maxAddress-511, maxAddress)).To(BeTrue())
	})

	It("should include every power-of-two address", func() {
		for bit := 0; bit < 15; bit++ {
			Expect(policy.Includes(1<<bit, maxAddress)).To(BeTrue())
		}
	})

	It("should include every 128th address", func() {
		Expect(policy.Includes(128*7, maxAddress)).To(BeTrue())
		Expect(policy.Includes(128*100, maxAddress)).To(BeTrue())
	})

	It("should skip everything else", func() {
		Expect(policy.Includes(700, maxAddress)).To(BeFalse())
		Expect(policy.Includes(12345, maxAddress)).To(BeFalse())
	})

	It("should select a subset of exhaustive coverage for every size", func() {
		for _, max := range []uint16{8191, 32767} {
			quick := 0
			for addr := uint16(0); ; addr++ {
				if policy.Includes(addr, max) {
					quick++
				}
				if addr == max {
					break
				}
			}

			Expect(quick).To(BeNumerically(">", 0))
			Expect(quick).To(BeNumerically("<", int(max)+1))
		}
	})
})
