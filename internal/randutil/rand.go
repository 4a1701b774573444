// Package randutil provides the random generators used by the simulators.
// Every generator satisfies the IntN(n int) int contract the equity package
// draws cards with.
package randutil

import (
	"encoding/binary"
	rand "math/rand/v2"

	"lukechampine.com/frand"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so that a run can be replayed
// from a single number.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Fast is a ChaCha8 generator from frand. It is not safe for concurrent use;
// give each worker its own.
type Fast struct {
	rng *frand.RNG
}

// NewFast returns a generator seeded from system entropy.
func NewFast() *Fast {
	return &Fast{rng: frand.New()}
}

// NewFastSeeded returns a reproducible frand generator.
func NewFastSeeded(seed int64) *Fast {
	var key [32]byte
	u := uint64(seed)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(key[i*8:], mix(u+uint64(i)*goldenRatio64))
	}
	return &Fast{rng: frand.NewCustom(key[:], 1024, 12)}
}

// IntN returns a uniform int in [0,n). It panics if n <= 0.
func (f *Fast) IntN(n int) int {
	return f.rng.Intn(n)
}

// Uint64N returns a uniform uint64 in [0,n).
func (f *Fast) Uint64N(n uint64) uint64 {
	return f.rng.Uint64n(n)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
