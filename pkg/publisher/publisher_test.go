package publisher

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screa/vanity-address-miner/internal/config"
	"github.com/screa/vanity-address-miner/internal/output"
	"github.com/screa/vanity-address-miner/pkg/types"
)

var sample = types.Candidate{
	Address:    "c0ffee3bd37d408910ecab316a07269fc49a20ee",
	PrivateKey: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
}

// fakeSearcher returns a fixed number of results, then reports a stop.
type fakeSearcher struct {
	limit int
	calls int
	err   error
}

func (s *fakeSearcher) Mine() (*types.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.calls >= s.limit {
		return nil, nil
	}
	s.calls++
	c := sample
	c.Address = fmt.Sprintf("%040x", s.calls)
	return &types.Result{Candidate: c, Round: s.calls, Attempts: 1}, nil
}

type brokenDevice struct{}

func (brokenDevice) Paint(_ output.Color, s string) string { return s }
func (brokenDevice) Write(string) error                    { return errors.New("stdout closed") }

func newPublisher(quiet, stream bool) (*Publisher, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(output.NewTerminal(&buf, config.ColorNever), quiet, stream), &buf
}

func TestQuietLineRoundTrip(t *testing.T) {
	p, _ := newPublisher(true, false)
	line := p.ResultBlock(sample)

	assert.True(t, strings.HasSuffix(line, "\n"))
	fields := strings.Fields(line)
	require.Len(t, fields, 2)
	assert.Equal(t, "0x"+sample.Address, fields[0])
	assert.Equal(t, sample.PrivateKey, fields[1])
}

func TestVerboseResultBlock(t *testing.T) {
	p, _ := newPublisher(false, false)
	block := p.ResultBlock(sample)

	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, banner, lines[0])
	assert.Equal(t, "Found address: 0x"+sample.Address, lines[1])
	assert.Equal(t, "Generated private key: "+sample.PrivateKey, lines[2])
	assert.Equal(t, importHint, lines[3])
	assert.Equal(t, keyWarning, lines[4])
	assert.Equal(t, banner, lines[5])
}

func TestHeaderPluralization(t *testing.T) {
	p, _ := newPublisher(false, false)

	assert.Contains(t, p.Header(1), "Looking for an address matching 1 pattern\n")
	assert.Contains(t, p.Header(3), "Looking for an address matching any of 3 patterns\n")
}

func TestQuietSuppressesDecoration(t *testing.T) {
	p, _ := newPublisher(true, false)

	assert.Empty(t, p.Header(2))
	assert.Empty(t, p.RateLine(100))
	assert.Equal(t, "Please, provide at least one valid pattern.\n", p.EmptyPatterns())
}

func TestRateLine(t *testing.T) {
	p, _ := newPublisher(false, false)
	assert.Equal(t, "12345 addresses / second\n", p.RateLine(12345))
}

func TestRunSingleRound(t *testing.T) {
	p, buf := newPublisher(true, false)
	s := &fakeSearcher{limit: 10}

	require.NoError(t, p.Run(s))
	assert.Equal(t, 1, s.calls)
	assert.Equal(t, fmt.Sprintf("0x%040x %s\n", 1, sample.PrivateKey), buf.String())
}

func TestRunStreamUntilStopped(t *testing.T) {
	p, buf := newPublisher(true, true)
	s := &fakeSearcher{limit: 5}

	require.NoError(t, p.Run(s))
	assert.Equal(t, 5, s.calls)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for i, l := range lines {
		assert.Equal(t, fmt.Sprintf("0x%040x %s", i+1, sample.PrivateKey), l)
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	p, _ := newPublisher(false, false)
	err := p.Run(&fakeSearcher{err: errors.New("boom")})
	assert.EqualError(t, err, "boom")

	p = New(brokenDevice{}, false, true)
	err = p.Run(&fakeSearcher{limit: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdout closed")
}

func TestWriteHeader(t *testing.T) {
	p, buf := newPublisher(false, false)
	require.NoError(t, p.WriteHeader(1))
	assert.Equal(t, banner+"\nLooking for an address matching 1 pattern\n"+banner+"\n", buf.String())

	p, buf = newPublisher(true, false)
	require.NoError(t, p.WriteHeader(1))
	assert.Empty(t, buf.String())
}

func TestResultBlockColors(t *testing.T) {
	p := New(output.NewTerminal(&bytes.Buffer{}, config.ColorAlwaysANSI), false, false)
	lines := strings.Split(strings.TrimSuffix(p.ResultBlock(sample), "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Contains(t, lines[1], "\x1b[")
	assert.Contains(t, lines[2], "\x1b[")
	assert.Equal(t, importHint, lines[3])
	assert.Contains(t, lines[4], "\x1b[")
	assert.Contains(t, lines[4], keyWarning)
}
