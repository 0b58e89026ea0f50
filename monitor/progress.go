package monitor

import (
	"sync"
	"time"
)

// A ProgressBar is a tracker of the progress of one long-running phase.
type ProgressBar struct {
	sync.Mutex
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Total     uint64    `json:"total"`
	Finished  uint64    `json:"finished"`
}

// SetFinished records how far the phase has come.
func (b *ProgressBar) SetFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Finished = amount
}

// Complete marks the phase done.
func (b *ProgressBar) Complete() {
	b.Lock()
	defer b.Unlock()

	b.Finished = b.Total
}

func (b *ProgressBar) snapshot() ProgressBar {
	b.Lock()
	defer b.Unlock()

	return ProgressBar{
		ID:        b.ID,
		Name:      b.Name,
		StartTime: b.StartTime,
		Total:     b.Total,
		Finished:  b.Finished,
	}
}
