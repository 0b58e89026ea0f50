package bus

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Geometry", func() {
	It("should describe an 8 KiB device", func() {
		g, err := MakeGeometry(Size8K)

		Expect(err).ToNot(HaveOccurred())
		Expect(g.AddressBits).To(Equal(13))
		Expect(g.MaxAddress).To(Equal(uint16(8191)))
	})

	It("should describe a 32 KiB device", func() {
		g, err := MakeGeometry(Size32K)

		Expect(err).ToNot(HaveOccurred())
		Expect(g.AddressBits).To(Equal(15))
		Expect(g.MaxAddress).To(Equal(uint16(32767)))
	})

	It("should reject unsupported sizes", func() {
		_, err := MakeGeometry(16384)

		Expect(err).To(MatchError(ContainSubstring("unsupported device size")))
	})
})
