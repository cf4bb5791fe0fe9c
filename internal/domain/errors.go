package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind shared by every rejected generator input.
// All other errors in this file wrap it, so errors.Is(err, ErrInvalidArgument)
// identifies a caller mistake regardless of which rule was broken.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrEmptyAlphabet is returned when an alphabet has no symbols.
	ErrEmptyAlphabet = fmt.Errorf("%w: alphabet is empty", ErrInvalidArgument)

	// ErrAlphabetTooLarge is returned when an alphabet has more symbols than
	// a single random byte can address.
	ErrAlphabetTooLarge = fmt.Errorf("%w: alphabet has more than %d symbols", ErrInvalidArgument, MaxAlphabetLen)

	// ErrDuplicateSymbol is returned when an alphabet repeats a symbol.
	ErrDuplicateSymbol = fmt.Errorf("%w: alphabet contains duplicate symbols", ErrInvalidArgument)

	// ErrInvalidUTF8 is returned when an alphabet is not valid UTF-8.
	ErrInvalidUTF8 = fmt.Errorf("%w: alphabet is not valid UTF-8", ErrInvalidArgument)

	// ErrNotNormalized is returned when an alphabet is not in Unicode NFC form.
	ErrNotNormalized = fmt.Errorf("%w: alphabet is not NFC normalized", ErrInvalidArgument)

	// ErrNonPositiveSize is returned when a requested ID size is zero or negative.
	ErrNonPositiveSize = fmt.Errorf("%w: size must be positive", ErrInvalidArgument)

	// ErrNonPositiveCount is returned when a batch of zero or fewer IDs is requested.
	ErrNonPositiveCount = fmt.Errorf("%w: count must be positive", ErrInvalidArgument)

	// ErrUnknownPreset is returned when a preset name is not registered.
	ErrUnknownPreset = fmt.Errorf("%w: unknown preset", ErrInvalidArgument)
)
