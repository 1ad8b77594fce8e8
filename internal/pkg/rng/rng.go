// Package rng provides reproducible dice rollers.
package rng

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

var _ dice.Roller = (*Seeded)(nil)

// Seeded is a dice.Roller driven by a seeded PCG source. The same seed
// always produces the same rolls.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a roller from a seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	if size <= 0 {
		return nil, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, count)
	for i := range out {
		out[i] = s.rng.IntN(size) + 1
	}
	return out, nil
}

// New returns a seeded roller when seed is non-zero and the toolkit's
// default roller otherwise.
func New(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return NewSeeded(seed)
}
