// Package rng is the random source the battle core rolls every die against.
// Callers inject it, so tests can replay a fixed sequence.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is a uniform random generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform int in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// NewPCG returns a seeded PCG generator.
func NewPCG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed generates a seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Range returns a uniform int in [lo, hi], both inclusive.
func Range(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

// Chance rolls a percent chance. Zero never succeeds and consumes no randomness.
func Chance(src Source, percent uint8) bool {
	return percent > 0 && src.IntN(100) < int(percent)
}
