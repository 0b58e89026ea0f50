package bus

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/ictest/hooking"
)

type captureHook struct {
	items []interface{}
}

func (h *captureHook) Func(ctx hooking.HookCtx) {
	h.items = append(h.items, ctx.Item)
}

var _ = Describe("Controller", func() {
	var (
		mockCtrl *gomock.Controller
		plane    *MockBackplane
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		plane = NewMockBackplane(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	expectSafeIdle := func() {
		plane.EXPECT().SetDataDirection(Input)
		plane.EXPECT().Deassert(WriteEnable)
		plane.EXPECT().Deassert(OutputEnable)
		plane.EXPECT().Deassert(ChipSelect)
	}

	build := func(size uint32, forcedBit int) *Controller {
		geometry, err := MakeGeometry(size)
		Expect(err).ToNot(HaveOccurred())

		expectSafeIdle()

		builder := MakeBuilder().
			WithBackplane(plane).
			WithGeometry(geometry).
			WithHoldTimer(NopTimer{})
		if forcedBit >= 0 {
			builder = builder.WithForcedBit(forcedBit)
		}

		return builder.Build()
	}

	It("should sequence a write transaction and end with the bus sampled", func() {
		c := build(Size32K, -1)

		gomock.InOrder(
			plane.EXPECT().SetAddressLow(byte(0x34)),
			plane.EXPECT().SetAddressHigh(byte(0x12)),
			plane.EXPECT().SetDataDirection(Output),
			plane.EXPECT().DriveData(byte(0xA5)),
			plane.EXPECT().Assert(ChipSelect),
			plane.EXPECT().Assert(WriteEnable),
			plane.EXPECT().Deassert(WriteEnable),
			plane.EXPECT().Deassert(ChipSelect),
			plane.EXPECT().SetDataDirection(Input),
		)

		c.WriteByte(0x1234, 0xA5)
	})

	It("should sequence a read transaction", func() {
		c := build(Size32K, -1)

		gomock.InOrder(
			plane.EXPECT().SetAddressLow(byte(0xCD)),
			plane.EXPECT().SetAddressHigh(byte(0x02)),
			plane.EXPECT().SetDataDirection(Input),
			plane.EXPECT().Assert(ChipSelect),
			plane.EXPECT().Assert(OutputEnable),
			plane.EXPECT().SampleData().Return(byte(0x5A)),
			plane.EXPECT().Deassert(OutputEnable),
			plane.EXPECT().Deassert(ChipSelect),
		)

		Expect(c.ReadByte(0x02CD)).To(Equal(byte(0x5A)))
	})

	It("should force the enable bit for narrow geometries", func() {
		c := build(Size8K, 13)

		plane.EXPECT().SetAddressLow(byte(0x01))
		plane.EXPECT().SetAddressHigh(byte(0x20))

		c.SetAddress(0x0001)
	})

	It("should not force the enable bit when it is a genuine address line", func() {
		c := build(Size32K, 13)

		plane.EXPECT().SetAddressLow(byte(0x01))
		plane.EXPECT().SetAddressHigh(byte(0x00))

		c.SetAddress(0x0001)
	})

	It("should report transactions through hooks", func() {
		c := build(Size32K, -1)

		hook := &captureHook{}
		c.AcceptHook(hook)

		plane.EXPECT().SetAddressLow(gomock.Any()).AnyTimes()
		plane.EXPECT().SetAddressHigh(gomock.Any()).AnyTimes()
		plane.EXPECT().SetDataDirection(gomock.Any()).AnyTimes()
		plane.EXPECT().DriveData(gomock.Any()).AnyTimes()
		plane.EXPECT().Assert(gomock.Any()).AnyTimes()
		plane.EXPECT().Deassert(gomock.Any()).AnyTimes()
		plane.EXPECT().SampleData().Return(byte(0x42)).AnyTimes()

		c.WriteByte(0x0010, 0x99)
		c.ReadByte(0x0010)

		Expect(hook.items).To(HaveLen(2))
		Expect(hook.items[0]).To(Equal(
			Transaction{Kind: "write", Address: 0x0010, Data: 0x99}))
		Expect(hook.items[1]).To(Equal(
			Transaction{Kind: "read", Address: 0x0010, Data: 0x42}))
	})
})
