package nanoid_test

import (
	"errors"
	"slices"
	"sync"
)

// sequenceSource replays a fixed byte sequence. Every Read fills p from the
// start of the sequence, cycling as needed, and then reverses p.
type sequenceSource struct {
	seq []byte

	mu    sync.Mutex
	reads int
}

func (s *sequenceSource) Read(p []byte) (int, error) {
	s.mu.Lock()
	s.reads++
	s.mu.Unlock()

	for i := range p {
		p[i] = s.seq[i%len(s.seq)]
	}
	slices.Reverse(p)
	return len(p), nil
}

func (s *sequenceSource) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// constSource returns the same byte forever.
type constSource byte

func (c constSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

// failingSource always fails.
type failingSource struct {
	err error
}

func (f *failingSource) Read(p []byte) (int, error) {
	return 0, f.err
}

var errSourceBroken = errors.New("source broken")
