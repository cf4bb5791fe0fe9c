package nanoid

import (
	"math"

	"github.com/eykd/nanoid-go/internal/domain"
)

// collisionProbability is the risk level Stats.IDsForCollision is quoted at.
const collisionProbability = 0.01

// Stats describes the cost and strength of IDs for an alphabet and size.
type Stats struct {
	AlphabetLen     int     `json:"alphabet_len"`
	Size            int     `json:"size"`
	Mask            int     `json:"mask"`
	Step            int     `json:"step"`
	AcceptanceRate  float64 `json:"acceptance_rate"`
	BitsPerSymbol   float64 `json:"bits_per_symbol"`
	EntropyBits     float64 `json:"entropy_bits"`
	IDsForCollision float64 `json:"ids_for_1pct_collision"`
}

// Inspect computes Stats for alphabet and size without drawing any random bytes.
func Inspect(alphabet domain.Alphabet, size int) (Stats, error) {
	if alphabet.IsZero() {
		return Stats{}, domain.ErrEmptyAlphabet
	}
	if err := domain.ValidateSize(size); err != nil {
		return Stats{}, err
	}

	l := alphabet.Len()
	mask := Mask(l)
	bitsPerSymbol := math.Log2(float64(l))

	// Birthday bound sqrt(2 * N * ln(1/(1-p))) with N = l^size, in log space
	// so large sizes do not overflow.
	logN := float64(size) * math.Log(float64(l))
	logIDs := 0.5 * (math.Ln2 + logN + math.Log(-math.Log1p(-collisionProbability)))

	return Stats{
		AlphabetLen:     l,
		Size:            size,
		Mask:            mask,
		Step:            step(mask, size, l),
		AcceptanceRate:  float64(l) / float64(mask+1),
		BitsPerSymbol:   bitsPerSymbol,
		EntropyBits:     bitsPerSymbol * float64(size),
		IDsForCollision: math.Exp(logIDs),
	}, nil
}

// Stats returns the statistics for the generator's alphabet and size.
func (g *Generator) Stats() Stats {
	s, _ := Inspect(g.alphabet, g.size)
	return s
}
