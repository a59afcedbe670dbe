package health

import (
	"math/rand/v2"
	"sync"
)

// BoolSource supplies uniformly distributed booleans.
// Implementations must be safe for concurrent use.
type BoolSource interface {
	Bool() bool
}

// BoolSourceFunc adapts a function to a BoolSource.
type BoolSourceFunc func() bool

// Bool implements BoolSource.
func (f BoolSourceFunc) Bool() bool {
	return f()
}

// RandSource is a BoolSource backed by a PCG generator.
// NewRandSource or NewSeededSource should be used to create instances of RandSource.
type RandSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandSource returns a RandSource seeded from the runtime's random state.
func NewRandSource() *RandSource {
	return &RandSource{
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSeededSource returns a RandSource which produces the same sequence for the same seed.
func NewSeededSource(seed uint64) *RandSource {
	return &RandSource{
		rnd: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Bool returns the next boolean from the generator.
func (s *RandSource) Bool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(2) == 1
}
