// Package randsrc provides random byte sources for the generator.
package randsrc

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand/v2"
	"sync"
)

// Crypto returns the operating system's cryptographically secure source.
func Crypto() io.Reader {
	return rand.Reader
}

// Seeded is a deterministic byte stream. The same seed always yields the same
// bytes. It is not safe for concurrent use; wrap it with Locked to share it
// between goroutines. Never use it for secrets.
type Seeded struct {
	chacha *mathrand.ChaCha8
}

// NewSeeded returns a Seeded source for seed.
func NewSeeded(seed uint64) *Seeded {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &Seeded{chacha: mathrand.NewChaCha8(key)}
}

// Read fills p with the next len(p) bytes of the stream.
func (s *Seeded) Read(p []byte) (int, error) {
	return s.chacha.Read(p)
}

// locked serializes reads of a reader that is not safe for concurrent use.
type locked struct {
	mu sync.Mutex
	r  io.Reader
}

// Locked wraps r so that concurrent generators can share it. Each Read call
// completes before the next one starts, so no caller observes a torn read.
func Locked(r io.Reader) io.Reader {
	return &locked{r: r}
}

func (l *locked) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return io.ReadFull(l.r, p)
}
