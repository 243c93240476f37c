package slider

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Shuffler is the host's permutation primitive: it returns the same elements
// in a uniformly random order.
type Shuffler interface {
	Shuffle(values []int) []int
}

// ShufflerFunc adapts a function to the Shuffler interface.
type ShufflerFunc func(values []int) []int

// Shuffle calls f.
func (f ShufflerFunc) Shuffle(values []int) []int {
	return f(values)
}

// RandomShuffler shuffles with a Fisher-Yates pass over a copy of the input.
// It is safe for concurrent use.
type RandomShuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomShuffler returns a shuffler using the supplied source, or the
// global generator when src is nil.
func NewRandomShuffler(src rand.Source) *RandomShuffler {
	if src == nil {
		return &RandomShuffler{}
	}
	return &RandomShuffler{rng: rand.New(src)}
}

// Shuffle returns a permuted copy of values.
func (s *RandomShuffler) Shuffle(values []int) []int {
	out := append([]int(nil), values...)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if s == nil || s.rng == nil {
		rand.Shuffle(len(out), swap)
		return out
	}
	s.mu.Lock()
	s.rng.Shuffle(len(out), swap)
	s.mu.Unlock()
	return out
}

// IdentityOrder returns [0, n).
func IdentityOrder(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// BuildOrder computes the display order of n questions. When randomize is
// set the shuffler permutes the identity order and its output is checked to
// be a permutation of [0, n).
func BuildOrder(n int, randomize bool, shuffler Shuffler) ([]int, error) {
	order := IdentityOrder(n)
	if !randomize {
		return order, nil
	}
	if shuffler == nil {
		return nil, ErrShufflerRequired
	}
	shuffled := shuffler.Shuffle(order)
	if err := CheckPermutation(shuffled, n); err != nil {
		return nil, err
	}
	return shuffled, nil
}

// CheckPermutation verifies order holds every index in [0, n) exactly once.
func CheckPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: got %d entries, want %d", ErrInvalidOrder, len(order), n)
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			return fmt.Errorf("%w: index %d", ErrInvalidOrder, idx)
		}
		seen[idx] = true
	}
	return nil
}
