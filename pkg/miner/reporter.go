package miner

import (
	"sync/atomic"
	"time"

	"github.com/screa/vanity-address-miner/pkg/worker"
)

// reporter samples the miss counter once per interval and leaves the
// formatted line in a single-slot stash for the coordinator to forward.
// An unconsumed line is replaced by the next one.
type reporter struct {
	state    *worker.State
	format   func(count uint64) string
	interval time.Duration
	stash    atomic.Pointer[string]
}

func newReporter(state *worker.State, format func(uint64) string, interval time.Duration) *reporter {
	return &reporter{
		state:    state,
		format:   format,
		interval: interval,
	}
}

func (r *reporter) run(stop <-chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		if r.state.Done() {
			return
		}
		r.tick()
	}
}

func (r *reporter) tick() {
	line := r.format(r.state.TakeCounter())
	r.stash.Store(&line)
}

// take empties the stash and returns its line, or "" if nothing is pending.
func (r *reporter) take() string {
	line := r.stash.Swap(nil)
	if line == nil {
		return ""
	}
	return *line
}
