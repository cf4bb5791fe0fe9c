// Package domain holds the value types shared by the generator and the CLI:
// alphabets, size rules and named presets.
package domain

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// MaxAlphabetLen is the largest alphabet every symbol of which a single
// random byte can still select.
const MaxAlphabetLen = 256

// Alphabet is an ordered set of distinct symbols. Index i of the alphabet is
// what a masked random byte with value i selects.
type Alphabet struct {
	symbols []rune
}

// NewAlphabet validates s and returns it as an Alphabet holding exactly the
// runes of s. s must be valid UTF-8 in NFC form; it is never rewritten.
func NewAlphabet(s string) (Alphabet, error) {
	switch {
	case !utf8.ValidString(s):
		return Alphabet{}, ErrInvalidUTF8
	case !norm.NFC.IsNormalString(s):
		return Alphabet{}, fmt.Errorf("%w: %q", ErrNotNormalized, s)
	}

	symbols := []rune(s)

	switch {
	case len(symbols) == 0:
		return Alphabet{}, ErrEmptyAlphabet
	case len(symbols) > MaxAlphabetLen:
		return Alphabet{}, fmt.Errorf("%w: got %d", ErrAlphabetTooLarge, len(symbols))
	}

	if dups := lo.FindDuplicates(symbols); len(dups) > 0 {
		return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, string(dups))
	}

	return Alphabet{symbols: symbols}, nil
}

// MustAlphabet is like NewAlphabet but panics on error. It is meant for
// package-level constants.
func MustAlphabet(s string) Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// IsZero reports whether a was never initialized by NewAlphabet.
func (a Alphabet) IsZero() bool {
	return len(a.symbols) == 0
}

// Symbol returns the symbol at index i.
func (a Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// Contains reports whether r is one of the alphabet's symbols.
func (a Alphabet) Contains(r rune) bool {
	return slices.Contains(a.symbols, r)
}

// Symbols returns a copy of the alphabet's symbols in order.
func (a Alphabet) Symbols() []rune {
	return slices.Clone(a.symbols)
}

// String returns the alphabet as a string.
func (a Alphabet) String() string {
	return string(a.symbols)
}

// Equal reports whether a and b hold the same symbols in the same order.
func (a Alphabet) Equal(b Alphabet) bool {
	return slices.Equal(a.symbols, b.symbols)
}
