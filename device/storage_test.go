package device_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ictest/device"
)

var _ = Describe("Storage", func() {
	It("should read back what was written", func() {
		storage := device.NewStorage(8192)

		Expect(storage.WriteByte(100, 0xA5)).To(Succeed())

		value, err := storage.ReadByte(100)
		Expect(err).ToNot(HaveOccurred())
		Expect(value).To(Equal(byte(0xA5)))
	})

	It("should read zero from untouched cells", func() {
		storage := device.NewStorage(8192)

		value, err := storage.ReadByte(8191)
		Expect(err).ToNot(HaveOccurred())
		Expect(value).To(Equal(byte(0)))
	})

	It("should write across unit boundaries", func() {
		storage := device.NewStorage(32768)

		Expect(storage.WriteByte(4095, 0x11)).To(Succeed())
		Expect(storage.WriteByte(4096, 0x22)).To(Succeed())

		a, _ := storage.ReadByte(4095)
		b, _ := storage.ReadByte(4096)
		Expect(a).To(Equal(byte(0x11)))
		Expect(b).To(Equal(byte(0x22)))
	})

	It("should return error if accessing over the capacity", func() {
		storage := device.NewStorage(4096)

		Expect(storage.WriteByte(4096, 1)).ToNot(Succeed())

		_, err := storage.ReadByte(4096)
		Expect(err).To(HaveOccurred())
	})
})
