package mixer

// Shuffle returns a seeded Fisher-Yates permutation of items. The input
// slice is never mutated; the result is a fresh slice holding the same
// elements. A fixed seed always yields the same permutation. Sequences of
// length 0 or 1 are returned as-is (copied).
func Shuffle[T any](items []T, seed int64) []T {
	out := make([]T, len(items))
	copy(out, items)

	gen := NewGenerator(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := gen.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
