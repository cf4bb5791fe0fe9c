package domain

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// DefaultAlphabetSymbols is the 64-symbol URL-safe alphabet.
const DefaultAlphabetSymbols = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultAlphabet is the alphabet used when the caller does not choose one.
var DefaultAlphabet = MustAlphabet(DefaultAlphabetSymbols)

// DefaultPreset names the preset that holds DefaultAlphabet.
const DefaultPreset = "url"

var presets = map[string]string{
	DefaultPreset:       DefaultAlphabetSymbols,
	"numbers":           "0123456789",
	"hex":               "0123456789abcdef",
	"hex-upper":         "0123456789ABCDEF",
	"lowercase":         "abcdefghijklmnopqrstuvwxyz",
	"uppercase":         "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"alphanumeric":      "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
	"nolookalikes":      "346789ABCDEFGHJKLMNPQRTUVWXYabcdefghijkmnpqrtwxyz",
	"nolookalikes-safe": "6789BCDFGHJKLMNPQRTWbcdfghjkmnpqrtwz",
}

// Preset returns the alphabet registered under name.
func Preset(name string) (Alphabet, error) {
	symbols, ok := presets[name]
	if !ok {
		return Alphabet{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return MustAlphabet(symbols), nil
}

// PresetNames returns every registered preset name in sorted order.
func PresetNames() []string {
	names := lo.Keys(presets)
	slices.Sort(names)
	return names
}
