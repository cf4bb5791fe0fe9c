package domain

import "fmt"

// DefaultSize is the ID length used when the caller does not choose one.
// With the default alphabet it gives 126 bits of entropy.
const DefaultSize = 21

// ValidateSize returns ErrNonPositiveSize unless size is at least 1.
func ValidateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveSize, size)
	}
	return nil
}

// ValidateCount returns ErrNonPositiveCount unless count is at least 1.
func ValidateCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveCount, count)
	}
	return nil
}
