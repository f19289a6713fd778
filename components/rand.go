package components

// Rand is the randomness source consumed by entities
// *math/rand.Rand satisfies it; tests supply scripted sequences
type Rand interface {
	Float64() float64
	Intn(n int) int
}
