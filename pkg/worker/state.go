package worker

import (
	"sync/atomic"

	"github.com/screa/vanity-address-miner/pkg/types"
)

// State is the data shared by every worker of one round.
//
// found is written without a compare-and-swap: two workers that match at
// nearly the same time may both store, and the later write wins. Either
// candidate is a valid result, so the overwrite is tolerated.
type State struct {
	found    atomic.Pointer[types.Candidate]
	stopped  atomic.Bool
	counter  atomic.Uint64
	attempts atomic.Uint64
	active   atomic.Int64
}

// NewState returns the state for a round run by the given number of workers.
func NewState(workers int) *State {
	s := &State{}
	s.active.Store(int64(workers))
	return s
}

// Found returns the accepted candidate, or nil while the round is running.
func (s *State) Found() *types.Candidate {
	return s.found.Load()
}

func (s *State) publish(c types.Candidate) {
	s.found.Store(&c)
}

// Stop asks the workers to exit without a result.
func (s *State) Stop() {
	s.stopped.Store(true)
}

// Done reports whether workers should exit.
func (s *State) Done() bool {
	return s.found.Load() != nil || s.stopped.Load()
}

// Active returns the number of workers that have not exited yet.
func (s *State) Active() int64 {
	return s.active.Load()
}

// Counter returns the number of misses since the last TakeCounter.
func (s *State) Counter() uint64 {
	return s.counter.Load()
}

// TakeCounter returns the miss counter and resets it to zero.
func (s *State) TakeCounter() uint64 {
	return s.counter.Swap(0)
}

// Attempts returns the total number of candidates evaluated this round.
func (s *State) Attempts() uint64 {
	return s.attempts.Load()
}
