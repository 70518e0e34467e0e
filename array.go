package testgen

import "slices"

// Rand is the source of uniform draws. *rand.Rand from math/rand/v2 implements it.
type Rand interface {
	// IntN returns a value in [0, n). It may panic if n <= 0.
	IntN(n int) int
}

// RandomArray returns n values drawn uniformly from [1, maxValue].
// A non-positive n yields an empty slice.
func RandomArray(r Rand, n, maxValue int, sorted bool) []int {
	if n < 0 {
		n = 0
	}
	values := make([]int, n)
	for i := range values {
		values[i] = between(r, maxValue)
	}
	if sorted {
		slices.Sort(values)
	}
	return values
}

// between draws uniformly from [1, ceiling].
func between(r Rand, ceiling int) int {
	return r.IntN(ceiling) + 1
}
