package mixer

// Linear congruential generator constants (Numerical Recipes). The modulus
// is 2^32, applied by masking.
const (
	lcgMultiplier uint64 = 1664525
	lcgIncrement  uint64 = 1013904223
	lcgModulus    uint64 = 1 << 32
)

// Generator is a deterministic pseudo-random number stream. It is the only
// source of randomness inside the mixer: two Generators built from the same
// seed produce identical sequences of any length, so every shuffle in this
// package is reproducible from its seed alone.
//
// Not safe for concurrent use; give each goroutine its own instance.
type Generator struct {
	state uint64
}

// NewGenerator creates a Generator seeded with the given value.
func NewGenerator(seed int64) *Generator {
	return &Generator{state: uint64(seed) % lcgModulus}
}

// Next advances the stream and returns a value in [0, 1).
func (g *Generator) Next() float64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.state) / float64(lcgModulus)
}

// Intn returns a uniform value in [0, n). n must be positive.
func (g *Generator) Intn(n int) int {
	return int(g.Next() * float64(n))
}
