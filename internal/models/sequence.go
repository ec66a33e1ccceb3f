package models

import "sync"

// SequenceFloor is the value order ids start above: the first generated
// id is 1001.
const SequenceFloor = 1000

// Sequence hands out order ids. It is injected into the order service,
// which seeds it from the highest persisted id so restarts never reuse
// an id.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

func NewSequence(seed int64) *Sequence {
	if seed < SequenceFloor {
		seed = SequenceFloor
	}

	return &Sequence{last: seed}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++

	return s.last
}

// Current returns the last id handed out without advancing.
func (s *Sequence) Current() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}
