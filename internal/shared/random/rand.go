package random

import (
	"math"
	"sync/atomic"
)

// LCG constants (full period mod 2^64).
// http://nuclear.llnl.gov/CNP/rng/rngman/node4.html
const (
	multiplier uint64 = 2862933555777941757
	increment  uint64 = 3037000493
)

// StdSeed is the seed used when none is configured.
const StdSeed uint64 = 0x123456789abcdef0

func next(n uint64) uint64 {
	return n*multiplier + increment
}

// Shared is a process-wide generator safe for concurrent use.
// Its state is updated only via atomic CAS, so no value is issued twice.
type Shared struct {
	state   atomic.Uint64
	draws   atomic.Int64
	retries atomic.Int64
}

func NewShared(seed uint64) *Shared {
	s := &Shared{}
	s.state.Store(seed)
	return s
}

// Draw advances the shared state and returns the new value.
// Will likely be slow in the presence of contention.
func (s *Shared) Draw() uint64 {
	for {
		cur := s.state.Load()
		nxt := next(cur)
		if s.state.CompareAndSwap(cur, nxt) {
			s.draws.Add(1)
			return nxt
		}
		s.retries.Add(1)
	}
}

// Local makes a new task generator seeded from two shared draws.
func (s *Shared) Local() *Local {
	return NewLocal(s.Draw() ^ s.Draw())
}

// Metrics returns successful draws and failed CAS attempts.
func (s *Shared) Metrics() (draws, retries int64) {
	return s.draws.Load(), s.retries.Load()
}

// Local is a private generator owned by exactly one goroutine.
// It is not safe for concurrent use: hand it over, never share it.
type Local struct {
	state uint64
}

func NewLocal(seed uint64) *Local {
	return &Local{state: seed}
}

// Draw returns the current state and advances it.
func (l *Local) Draw() uint64 {
	old := l.state
	l.state = next(old)
	return old
}

// Float64 returns a value in [0, 1].
func (l *Local) Float64() float64 {
	return float64(l.Draw()) / float64(math.MaxUint64)
}
