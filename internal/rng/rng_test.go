package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_Inclusive(t *testing.T) {
	src := NewPCG(7)
	lo, hi := 85, 100
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := Range(src, lo, hi)
		if v < lo || v > hi {
			t.Fatalf("Range() = %d outside [%d,%d]", v, lo, hi)
		}
		seen[v] = true
	}
	assert.Len(t, seen, hi-lo+1)
}

func TestChance(t *testing.T) {
	s := &Script{Ints: []int{29, 30}}
	assert.True(t, Chance(s, 30))
	assert.False(t, Chance(s, 30))
	assert.True(t, s.Done())

	// zero consumes nothing
	assert.False(t, Chance(s, 0))
}

func TestNewPCG_Deterministic(t *testing.T) {
	a, b := NewPCG(42), NewPCG(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	assert.NoError(t, err)
}

func TestScript_PanicsWhenExhausted(t *testing.T) {
	s := &Script{}
	assert.Panics(t, func() { s.IntN(10) })
	assert.Panics(t, func() { s.Float64() })

	s = &Script{Ints: []int{10}}
	assert.Panics(t, func() { s.IntN(10) })
}
