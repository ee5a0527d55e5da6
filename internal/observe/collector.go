package observe

import (
	"errors"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// ErrFinalized is returned by Finalize when the collector already holds its
// terminal DONE event.
var ErrFinalized = errors.New("collector already finalized")

// Collector records every notification as a trace.Event, in order, into a
// replayable sequence.
//
// A Collector serves exactly one algorithm invocation on one goroutine and
// holds no synchronization. The sanctioned call sequence is Sort, then
// Finalize, then Events.
type Collector struct {
	events    []trace.Event
	finalized bool
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Compare(i, j int) {
	c.append(trace.NewCompare(i, j))
}

func (c *Collector) Swap(i, j int) {
	c.append(trace.NewSwap(i, j))
}

func (c *Collector) Set(index, value int) {
	c.append(trace.NewSet(index, value))
}

// append panics once the collector is finalized: reporting after DONE can
// only come from a broken call sequence.
func (c *Collector) append(e trace.Event) {
	if c.finalized {
		panic("observe: event reported after Finalize")
	}
	c.events = append(c.events, e)
}

// Finalize appends the single DONE event. Calling it again returns
// ErrFinalized and leaves the sequence unchanged.
func (c *Collector) Finalize() error {
	if c.finalized {
		return ErrFinalized
	}
	c.events = append(c.events, trace.NewDone())
	c.finalized = true
	return nil
}

// Finalized reports whether Finalize has been called.
func (c *Collector) Finalized() bool {
	return c.finalized
}

// Len returns the number of events collected so far.
func (c *Collector) Len() int {
	return len(c.events)
}

// Events returns a read-only view of everything collected so far. Before
// Finalize this is the partial history.
func (c *Collector) Events() trace.View {
	return trace.NewView(c.events[:len(c.events):len(c.events)])
}
