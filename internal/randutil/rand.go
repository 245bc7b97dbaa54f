// Package randutil builds reproducible math/rand/v2 sources for dealing.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	return Stream(seed, 0)
}

// Stream returns the stream'th independent source derived from seed. Workers
// dealing in parallel each take their own stream so results do not depend on
// scheduling.
func Stream(seed int64, stream int) *rand.Rand {
	base := uint64(seed) + uint64(stream)*goldenRatio64
	return rand.New(rand.NewPCG(splitmix(base), splitmix(base^goldenRatio64)))
}

// splitmix is the SplitMix64 finaliser.
func splitmix(x uint64) uint64 {
	x += goldenRatio64
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
