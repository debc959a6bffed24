package sim

import "math/rand"

// Corruptor injects single-bit transmission errors. All draws come from
// the run-scoped generator, so a run replays exactly for a given seed.
type Corruptor struct {
	rng *rand.Rand
}

func NewCorruptor(rng *rand.Rand) *Corruptor { return &Corruptor{rng: rng} }

// Corrupt returns data untouched with probability 1-p. Otherwise it picks
// one byte position uniformly and XORs it with a random non-zero mask, so
// the corrupted frame always differs from the original. Empty input passes
// through. The input slice is never mutated; callers must not rely on
// whether the returned slice aliases it.
func (c *Corruptor) Corrupt(data []byte, p float64) []byte {
	if len(data) == 0 {
		return data
	}
	if p <= 0 || c.rng.Float64() >= p {
		return data
	}
	pos := c.rng.Intn(len(data))
	mask := byte(1 + c.rng.Intn(255))
	out := make([]byte, len(data))
	copy(out, data)
	out[pos] ^= mask
	return out
}
