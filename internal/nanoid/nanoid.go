// Package nanoid generates short random identifiers from a configurable
// alphabet. Random bytes are masked down to the smallest power of two that
// covers the alphabet and out-of-range values are rejected, so every symbol
// is equally likely.
package nanoid

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eykd/nanoid-go/internal/domain"
)

// ErrNilSource is returned when a nil random source is supplied.
var ErrNilSource = fmt.Errorf("%w: random source is nil", domain.ErrInvalidArgument)

// Generator produces IDs of a fixed size from a fixed alphabet. It keeps no
// mutable state after construction and is safe for concurrent use whenever
// its source is.
type Generator struct {
	alphabet domain.Alphabet
	size     int
	source   io.Reader
	workers  int
	logger   *slog.Logger

	mask int
	step int
}

// Option configures a Generator.
type Option func(*Generator)

// WithAlphabet sets the alphabet. The default is domain.DefaultAlphabet.
func WithAlphabet(a domain.Alphabet) Option {
	return func(g *Generator) { g.alphabet = a }
}

// WithSize sets the number of symbols per ID. The default is domain.DefaultSize.
func WithSize(size int) Option {
	return func(g *Generator) { g.size = size }
}

// WithSource sets the random byte source. The default is crypto/rand.Reader.
func WithSource(r io.Reader) Option {
	return func(g *Generator) { g.source = r }
}

// WithWorkers sets how many goroutines GenerateN may use. The default of 1
// generates sequentially, which keeps a seeded source reproducible.
func WithWorkers(n int) Option {
	return func(g *Generator) { g.workers = n }
}

// WithLogger sets the logger used for debug output about rejected bytes.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator builds a Generator and validates its configuration.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		alphabet: domain.DefaultAlphabet,
		size:     domain.DefaultSize,
		source:   rand.Reader,
		workers:  1,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.alphabet.IsZero() {
		return nil, domain.ErrEmptyAlphabet
	}
	if err := domain.ValidateSize(g.size); err != nil {
		return nil, err
	}
	if g.source == nil {
		return nil, ErrNilSource
	}
	if g.workers < 1 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", domain.ErrInvalidArgument, g.workers)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}

	g.mask = Mask(g.alphabet.Len())
	g.step = step(g.mask, g.size, g.alphabet.Len())
	return g, nil
}

// Alphabet returns the generator's alphabet.
func (g *Generator) Alphabet() domain.Alphabet {
	return g.alphabet
}

// Size returns the number of symbols in each generated ID.
func (g *Generator) Size() int {
	return g.size
}

// Generate returns a new ID.
func (g *Generator) Generate() (string, error) {
	return g.GenerateContext(context.Background())
}

// GenerateContext returns a new ID. ctx is checked between batches of random
// bytes only, so a cancelled call never leaves the source mid-read.
func (g *Generator) GenerateContext(ctx context.Context) (string, error) {
	var (
		b        strings.Builder
		buf      = make([]byte, g.step)
		n        int
		rounds   int
		rejected int
		alphaLen = g.alphabet.Len()
	)
	b.Grow(g.size)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := io.ReadFull(g.source, buf); err != nil {
			return "", fmt.Errorf("reading random bytes: %w", err)
		}
		rounds++

		for _, rb := range buf {
			idx := int(rb) & g.mask
			if idx >= alphaLen {
				rejected++
				continue
			}
			b.WriteRune(g.alphabet.Symbol(idx))
			n++
			if n == g.size {
				g.logger.Debug("generated id",
					slog.Int("size", g.size),
					slog.Int("rounds", rounds),
					slog.Int("rejected", rejected))
				return b.String(), nil
			}
		}
	}
}

// New returns an ID of domain.DefaultSize symbols from domain.DefaultAlphabet
// using crypto/rand.
func New() (string, error) {
	g, err := NewGenerator()
	if err != nil {
		return "", err
	}
	return g.Generate()
}

// Generate returns an ID of size symbols drawn from alphabet using crypto/rand.
func Generate(alphabet string, size int) (string, error) {
	return GenerateFrom(rand.Reader, alphabet, size)
}

// GenerateFrom returns an ID of size symbols drawn from alphabet, reading
// random bytes from src.
func GenerateFrom(src io.Reader, alphabet string, size int) (string, error) {
	g, err := newFromArgs(src, alphabet, size)
	if err != nil {
		return "", err
	}
	return g.Generate()
}

func newFromArgs(src io.Reader, alphabet string, size int) (*Generator, error) {
	a, err := domain.NewAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	return NewGenerator(WithAlphabet(a), WithSize(size), WithSource(src))
}

// IsInvalidArgument reports whether err was caused by a rejected input.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, domain.ErrInvalidArgument)
}
