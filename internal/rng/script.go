package rng

import "fmt"

// Script replays fixed values in order. Ints feed IntN, Floats feed Float64.
// It panics when a value is out of range or the script runs dry, so a test
// fails loudly if the code under test rolls more dice than expected.
type Script struct {
	Ints   []int
	Floats []float64
}

var _ Source = (*Script)(nil)

func (s *Script) IntN(n int) int {
	if len(s.Ints) == 0 {
		panic(fmt.Sprintf("rng: script exhausted (IntN(%d))", n))
	}
	v := s.Ints[0]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("rng: scripted %d outside [0,%d)", v, n))
	}
	s.Ints = s.Ints[1:]
	return v
}

func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("rng: script exhausted (Float64)")
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Done reports whether every scripted value was consumed.
func (s *Script) Done() bool {
	return len(s.Ints) == 0 && len(s.Floats) == 0
}
