package patterns

import (
	"fmt"
	"regexp"
)

// Rejection records a pattern that failed to compile.
type Rejection struct {
	Pattern string
	Err     error
}

// Set is an ordered collection of compiled address patterns. It is
// immutable after Compile and safe for concurrent use.
type Set struct {
	rules    []*regexp.Regexp
	rejected []Rejection
}

// Compile builds a Set from raw patterns, keeping their order. Patterns that
// do not compile are left out of the set and listed by Rejected.
//
// Matching is case-insensitive and unanchored. RE2 already treats input as
// UTF-8, keeps ^ and $ bound to the whole text and does not let . match a
// newline, so only the case flag is added.
func Compile(raw []string) *Set {
	s := &Set{rules: make([]*regexp.Regexp, 0, len(raw))}
	for _, p := range raw {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			s.rejected = append(s.rejected, Rejection{
				Pattern: p,
				Err:     fmt.Errorf("invalid regex: %w", err),
			})
			continue
		}
		s.rules = append(s.rules, re)
	}
	return s
}

// Contains reports whether any pattern matches the address. Patterns are
// tried in insertion order and the scan stops at the first match.
func (s *Set) Contains(address string) bool {
	for _, re := range s.rules {
		if re.MatchString(address) {
			return true
		}
	}
	return false
}

// Len returns the number of retained patterns
func (s *Set) Len() int {
	return len(s.rules)
}

// Rejected returns the patterns dropped by Compile
func (s *Set) Rejected() []Rejection {
	return s.rejected
}
