package types

import "time"

// Candidate is a generated keypair and the address derived from it.
// Address is 40 lowercase hex characters without the 0x prefix and
// PrivateKey is 64 lowercase hex characters.
type Candidate struct {
	Address    string
	PrivateKey string
}

// Result represents the outcome of one search round
type Result struct {
	Candidate
	Round    int
	Attempts uint64
	Duration time.Duration
}

// Rate returns the number of candidates evaluated per second over the round.
func (r *Result) Rate() float64 {
	if r.Duration.Seconds() <= 0 {
		return 0
	}
	return float64(r.Attempts) / r.Duration.Seconds()
}
