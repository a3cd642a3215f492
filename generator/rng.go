package generator

import "math/rand"

// defaultSeed replaces a zero seed so NewSource(0) is still reproducible.
const defaultSeed int64 = 1

// NewSource returns a deterministic *rand.Rand for seed. seed==0 uses
// defaultSeed. The result is not safe for concurrent use.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
