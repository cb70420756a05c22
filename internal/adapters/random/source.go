// Package random provides the pseudo-random draws behind the synthetic band
// generator.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/luminabrain/lb/internal/ports"
)

// Source is safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ ports.RandomSource = (*Source)(nil)

// New returns a source seeded from the runtime's entropy.
func New() *Source {
	return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a reproducible source.
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}
