package trace

import (
	"iter"
	"slices"
)

// View is a read-only, order-preserving window over an event sequence.
// Events are values, so nothing handed out by a View can alter the
// sequence it was taken from.
type View struct {
	events []Event
}

// NewView wraps events. The caller must not mutate the slice afterwards.
func NewView(events []Event) View {
	return View{events: events}
}

// Len returns the number of events.
func (v View) Len() int {
	return len(v.events)
}

// At returns the event at position i. Panics if i is out of range.
func (v View) At(i int) Event {
	return v.events[i]
}

// All iterates events in emission order.
func (v View) All() iter.Seq2[int, Event] {
	return func(yield func(int, Event) bool) {
		for i, e := range v.events {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Events returns a copy of the sequence. Never nil.
func (v View) Events() []Event {
	if len(v.events) == 0 {
		return []Event{}
	}
	return slices.Clone(v.events)
}
