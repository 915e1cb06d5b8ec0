package worker

import (
	"github.com/screa/vanity-address-miner/pkg/types"
)

// Generator produces one candidate per call
type Generator interface {
	Generate() (types.Candidate, error)
}

// Matcher decides whether an address is wanted
type Matcher interface {
	Contains(address string) bool
}

// Worker handles candidate generation and matching for one goroutine
type Worker struct {
	gen     Generator
	matcher Matcher
	state   *State
}

// NewWorker creates a new worker instance
func NewWorker(gen Generator, matcher Matcher, state *State) *Worker {
	return &Worker{
		gen:     gen,
		matcher: matcher,
		state:   state,
	}
}

// Run evaluates candidates until the round is done, then decrements the
// active worker count exactly once. The done check happens only at the top
// of each iteration, so a worker may finish one in-flight evaluation after
// another worker has matched.
func (w *Worker) Run() {
	defer w.state.active.Add(-1)

	for !w.state.Done() {
		w.Step()
	}
}

// Step evaluates a single candidate and reports whether it matched.
func (w *Worker) Step() bool {
	c, err := w.gen.Generate()
	if err != nil {
		// crypto/rand failure; nothing was evaluated
		return false
	}
	w.state.attempts.Add(1)

	if w.matcher.Contains(c.Address) {
		w.state.publish(c)
		return true
	}

	w.state.counter.Add(1)
	return false
}
