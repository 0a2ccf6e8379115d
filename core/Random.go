package core

// RandomSource is the subset of *math/rand.Rand the ball draws serves from.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// between draws uniformly from [lo, hi).
func between(rng RandomSource, lo, hi float32) float32 {
	return lo + float32(float64(hi-lo)*rng.Float64())
}
