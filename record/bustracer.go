package record

import (
	"time"

	"github.com/sarchlab/ictest/bus"
	"github.com/sarchlab/ictest/hooking"
)

// busTraceTable is the table bus transactions land in.
const busTraceTable = "bus_trace"

// A TransactionRow is one recorded bus transaction.
type TransactionRow struct {
	Seq     uint64
	TimeNS  int64
	Kind    string
	Address uint16
	Data    uint8
}

// A BusTracer is a hook that records every bus transaction into a
// DataRecorder.
type BusTracer struct {
	recorder DataRecorder
	seq      uint64
}

// NewBusTracer creates a BusTracer and prepares its table.
func NewBusTracer(recorder DataRecorder) *BusTracer {
	recorder.CreateTable(busTraceTable, TransactionRow{})

	return &BusTracer{recorder: recorder}
}

// Func records one transaction.
func (t *BusTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != bus.HookPosRead && ctx.Pos != bus.HookPosWrite {
		return
	}

	transaction := ctx.Item.(bus.Transaction)

	t.seq++
	t.recorder.InsertData(busTraceTable, TransactionRow{
		Seq:     t.seq,
		TimeNS:  time.Now().UnixNano(),
		Kind:    transaction.Kind,
		Address: transaction.Address,
		Data:    transaction.Data,
	})
}
