package nanoid

import (
	"math"
	"math/bits"
)

// Mask returns the smallest value of the form 2^k-1 that is at least
// alphabetLen-1. A random byte ANDed with the mask is a candidate index that
// falls inside the alphabet at least half of the time.
func Mask(alphabetLen int) int {
	if alphabetLen <= 1 {
		return 0
	}
	// The |1 keeps the operand non-zero; it cannot change the result for
	// alphabetLen >= 2 because bit 0 never moves the highest set bit.
	return (2 << (31 - bits.LeadingZeros32(uint32(alphabetLen-1)|1))) - 1
}

// step returns how many random bytes to request per round so that one round
// usually yields size accepted symbols.
func step(mask, size, alphabetLen int) int {
	if mask == 0 {
		// Not the general formula, which would clamp to 1 byte per round.
		// Every byte is accepted, so one read of size bytes fills the ID.
		return size
	}
	n := int(math.Ceil(1.6 * float64(mask) * float64(size) / float64(alphabetLen)))
	return max(n, 1)
}
