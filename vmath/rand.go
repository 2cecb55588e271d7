// Package vmath provides the game's deterministic random source.
package vmath

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator; zero is replaced since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for non-positive n
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
