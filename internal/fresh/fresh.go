// Package fresh provides generators for unbounded sequences of distinct
// names: prefix1, prefix2, prefix3, and so on. State is an explicit counter
// owned by the sequence, never ambient package-level mutation, so callers
// control the lifetime and tests control the reset.
package fresh

import (
	"strconv"
	"sync"
)

// Sequence yields an unbounded stream of distinct names sharing a prefix.
// The zero value is not usable; construct with NewSequence.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequence returns a sequence producing prefix1, prefix2, ...
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next unused name in the sequence.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.prefix + strconv.Itoa(s.n)
}

// Prefix returns the sequence's name prefix.
func (s *Sequence) Prefix() string {
	return s.prefix
}

// Reset restarts the sequence from prefix1. Names handed out before the
// reset are reused afterwards, so this exists for tests only.
func (s *Sequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = 0
}
