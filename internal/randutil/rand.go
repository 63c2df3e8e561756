// Package randutil derives reproducible random sources for draws.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so a draw can be replayed from
// the seed printed in the logs.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the source for stream n of a seed, such as one numbered
// attempt of a race. Streams of the same seed are independent.
func Derive(seed int64, n int) *rand.Rand {
	return New(int64(mix(uint64(seed) ^ mix(uint64(n)+1))))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
