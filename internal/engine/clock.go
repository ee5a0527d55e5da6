package engine

import "sync/atomic"

// Clock is a monotonic logical clock for run ordering.
//
// Every recorded run is stamped with a strictly increasing seq. The run log
// orders by seq, never by wall-clock time.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations); the
// HTTP server stamps runs from many request goroutines.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock that resumes after start.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}

// Observe advances the clock to seq if it is behind, so the next stamp
// follows a seq assigned elsewhere.
func (c *Clock) Observe(seq int64) {
	for {
		cur := c.seq.Load()
		if seq <= cur || c.seq.CompareAndSwap(cur, seq) {
			return
		}
	}
}
