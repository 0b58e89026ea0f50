package monitor

import (
	"github.com/sarchlab/ictest/hooking"
	"github.com/sarchlab/ictest/pattern"
)

// A RunHook mirrors pattern-engine progress events into monitor progress
// bars, one bar per reported phase.
type RunHook struct {
	monitor *Monitor

	bar      *ProgressBar
	barLabel string
}

// NewRunHook creates a RunHook feeding the given monitor.
func NewRunHook(m *Monitor) *RunHook {
	return &RunHook{monitor: m}
}

// Func consumes one engine event.
func (h *RunHook) Func(ctx hooking.HookCtx) {
	switch item := ctx.Item.(type) {
	case pattern.Progress:
		if h.bar == nil || h.barLabel != item.Label {
			h.closeBar()
			h.bar = h.monitor.CreateProgressBar(item.Label, item.Total)
			h.barLabel = item.Label
		}
		h.bar.SetFinished(item.Current)
	case pattern.Outcome:
		h.closeBar()
	}
}

func (h *RunHook) closeBar() {
	if h.bar == nil {
		return
	}

	h.bar.Complete()
	h.monitor.CompleteProgressBar(h.bar)
	h.bar = nil
	h.barLabel = ""
}
