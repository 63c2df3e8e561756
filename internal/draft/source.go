package draft

// RandSource provides the randomness used by an attempt. *rand.Rand from
// math/rand/v2 satisfies it; tests inject scripted sources.
type RandSource interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// Shuffle permutes n elements using swap
	Shuffle(n int, swap func(i, j int))
}
