// Package timer provides the shot stopwatch. It is a UI-facing convenience,
// not a precision clock: elapsed time advances by a fixed increment per tick
// with no drift compensation.
package timer

import (
	"sync"
	"time"
)

// TickInterval is the period between ticks.
const TickInterval = 100 * time.Millisecond

// Increment is the number of seconds added to the elapsed time per tick.
const Increment = 0.1

// Stopwatch counts up from zero while running. Start always resets to zero,
// so calling Start on a running stopwatch re-arms it; Stop halts ticking and
// keeps the last value. Stop is safe to call on all exit paths, including when
// the stopwatch never started.
type Stopwatch struct {
	mu       sync.Mutex
	interval time.Duration
	elapsed  float64
	running  bool
	done     chan struct{}
}

// New creates a stopwatch with the standard tick interval.
func New() *Stopwatch {
	return NewWithInterval(TickInterval)
}

// NewWithInterval creates a stopwatch ticking at the given period. Each tick
// still adds Increment seconds; tests use short intervals to run fast.
func NewWithInterval(interval time.Duration) *Stopwatch {
	return &Stopwatch{interval: interval}
}

// Start resets the elapsed time to zero and begins ticking.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		close(s.done)
	}

	s.elapsed = 0
	s.running = true
	s.done = make(chan struct{})
	go s.run(s.done)
}

// Stop halts ticking and preserves the last elapsed value.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	close(s.done)
	s.running = false
}

// Elapsed returns the current elapsed time in seconds.
func (s *Stopwatch) Elapsed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Running reports whether the stopwatch is ticking.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Stopwatch) run(done chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			// A tick racing Stop or a restart must not touch the
			// preserved value.
			if s.running && s.done == done {
				s.elapsed += Increment
			}
			s.mu.Unlock()
		}
	}
}
