package ports

import "math/rand"

// Random is the source of every draw the grind loop makes. *rand.Rand from
// math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
	Int64N(n int64) int64
}

// SystemRandom draws from the math/rand/v2 global source, which is safe for
// concurrent use.
type SystemRandom struct{}

func (SystemRandom) Float64() float64 {
	return rand.Float64()
}

func (SystemRandom) Int64N(n int64) int64 {
	return rand.Int63n(n)
}
