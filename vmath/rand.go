package vmath

// Random is the single random primitive the simulation consumes
// Intn returns a uniform integer in [0, n); n <= 0 yields 0
type Random interface {
	Intn(n int) int
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// State returns the internal state for snapshotting
func (r *FastRand) State() uint64 {
	return r.state
}

// SequenceRand replays a fixed script of values, wrapping at the end
// Each value is reduced modulo n; an empty script always yields 0
type SequenceRand struct {
	Values []int
	pos    int
}

// NewSequenceRand creates a scripted source over values
func NewSequenceRand(values ...int) *SequenceRand {
	return &SequenceRand{Values: values}
}

func (s *SequenceRand) Intn(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls returns how many values have been drawn
func (s *SequenceRand) Calls() int {
	return s.pos
}
