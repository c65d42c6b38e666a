package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how the two 64-bit seeds required by rand/v2 are
// derived, so mine placement and simulator workers all get reproducible
// sequences from a single configured seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive maps a base seed and an index to an independent stream seed.
// Workers seeded with Derive(seed, i) produce sequences that do not overlap
// regardless of how much randomness each consumes.
func Derive(seed int64, index int) int64 {
	return int64(mix(uint64(seed) + uint64(index)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
