package shared

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// RandomSource is an abstraction over uniform integer draws, allowing the
// simulation's only nondeterministic choice to be replayed in tests
type RandomSource interface {
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// SeededRandom is a deterministic source: the same seed yields the same sequence
type SeededRandom struct {
	rng *rand.Rand
}

// NewSeededRandom creates a SeededRandom from a 64-bit seed
func NewSeededRandom(seed uint64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededRandom) IntN(n int) int {
	return s.rng.IntN(n)
}

// NewEntropyRandom creates an unpredictable source seeded from the operating system
func NewEntropyRandom() RandomSource {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return &SeededRandom{rng: rand.New(rand.NewChaCha8(seed))}
}

// MockRandom replays a fixed sequence of values (taken modulo n), cycling when exhausted.
// An empty sequence always yields 0.
type MockRandom struct {
	Values []int
	calls  int
}

func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{Values: values}
}

func (m *MockRandom) IntN(n int) int {
	if len(m.Values) == 0 || n <= 0 {
		m.calls++
		return 0
	}
	v := m.Values[m.calls%len(m.Values)]
	m.calls++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls returns how many draws have been made
func (m *MockRandom) Calls() int {
	return m.calls
}
