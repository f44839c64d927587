package domain

import "math/rand/v2"

// SystemRNG delegates to math/rand/v2 (auto-seeded).
type SystemRNG struct{}

func (SystemRNG) Intn(n int) int { return rand.IntN(n) }

// seededRNG is a reproducible PCG source, used for replays and the -seed flag.
type seededRNG struct {
	r *rand.Rand
}

// NewSeededRNG returns an RNG whose sequence depends only on seed.
func NewSeededRNG(seed uint64) RNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }
