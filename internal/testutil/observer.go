package testutil

import (
	"sync"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// CountingObserver tallies notifications per operation without keeping the
// events themselves. Useful as an engine tap.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type CountingObserver struct {
	mu    sync.Mutex
	stats trace.Stats
}

func (c *CountingObserver) Compare(i, j int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Compares++
}

func (c *CountingObserver) Swap(i, j int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Swaps++
}

func (c *CountingObserver) Set(index, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Sets++
}

// Stats returns the counts so far. Done is always zero: observers are
// never told about the terminal marker.
func (c *CountingObserver) Stats() trace.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Reset zeroes the counts for test reuse.
func (c *CountingObserver) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = trace.Stats{}
}
