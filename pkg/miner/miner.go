package miner

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/screa/vanity-address-miner/internal/config"
	"github.com/screa/vanity-address-miner/internal/crypto"
	"github.com/screa/vanity-address-miner/internal/logger"
	"github.com/screa/vanity-address-miner/pkg/types"
	"github.com/screa/vanity-address-miner/pkg/worker"
)

const (
	// DefaultPollInterval bounds how long a finished round goes unnoticed.
	DefaultPollInterval = 10 * time.Millisecond
	// DefaultReportInterval is the throughput sampling period.
	DefaultReportInterval = time.Second
)

// Output is the destination for throughput lines. Only the goroutine
// running Mine writes to it.
type Output interface {
	Write(s string) error
}

// Miner coordinates the worker pool for one round at a time
type Miner struct {
	workers      int
	matcher      worker.Matcher
	newGenerator func() worker.Generator
	out          Output
	rateLine     func(count uint64) string
	logger       *logger.Logger

	PollInterval   time.Duration
	ReportInterval time.Duration

	rounds  int
	stopped atomic.Bool
	current atomic.Pointer[worker.State]
}

// NewMiner creates a new miner instance. rateLine formats a per-second
// count; an empty line is not written.
func NewMiner(cfg *config.Config, matcher worker.Matcher, out Output, rateLine func(uint64) string, log *logger.Logger) *Miner {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Miner{
		workers: workers,
		matcher: matcher,
		newGenerator: func() worker.Generator {
			return crypto.NewGenerator()
		},
		out:            out,
		rateLine:       rateLine,
		logger:         log,
		PollInterval:   DefaultPollInterval,
		ReportInterval: DefaultReportInterval,
	}
}

// Workers returns the pool size used for every round
func (m *Miner) Workers() int {
	return m.workers
}

// Mine runs one round: it spawns the workers and the rate reporter, forwards
// throughput lines while polling for completion, and returns the accepted
// candidate. It returns nil, nil if the miner was stopped before a match.
func (m *Miner) Mine() (*types.Result, error) {
	start := time.Now()
	m.rounds++

	state := worker.NewState(m.workers)
	m.current.Store(state)
	defer m.current.Store(nil)
	if m.stopped.Load() {
		state.Stop()
	}

	var wg sync.WaitGroup
	for i := 0; i < m.workers; i++ {
		w := worker.NewWorker(m.newGenerator(), m.matcher, state)
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Run()
		}()
	}

	rep := newReporter(state, m.rateLine, m.ReportInterval)
	stopReporter := make(chan struct{})
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		rep.run(stopReporter)
	}()

	m.logger.Debugf("round %d started with %d workers", m.rounds, m.workers)

	var writeErr error
	for state.Active() > 0 {
		if line := rep.take(); line != "" && writeErr == nil {
			if err := m.out.Write(line); err != nil {
				writeErr = err
				state.Stop()
			}
		}
		time.Sleep(m.PollInterval)
	}

	wg.Wait()
	close(stopReporter)
	<-reporterDone

	if writeErr != nil {
		return nil, fmt.Errorf("write throughput line: %w", writeErr)
	}

	found := state.Found()
	if found == nil {
		m.logger.Debugf("round %d stopped after %d attempts", m.rounds, state.Attempts())
		return nil, nil
	}

	result := &types.Result{
		Candidate: *found,
		Round:     m.rounds,
		Attempts:  state.Attempts(),
		Duration:  time.Since(start),
	}
	m.logger.Debugf("round %d: %d attempts in %v (%.2f addresses/sec)",
		result.Round, result.Attempts, result.Duration, result.Rate())

	return result, nil
}

// Stop ends the current round without a result and makes later rounds
// return immediately.
func (m *Miner) Stop() {
	m.stopped.Store(true)
	if state := m.current.Load(); state != nil {
		state.Stop()
	}
}
