package trace

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrIndexOutOfRange is returned when a SWAP or SET addresses a position
	// outside the array being replayed.
	ErrIndexOutOfRange = errors.New("event index out of range")

	// ErrMissingDone is returned when a sequence has no terminal DONE.
	ErrMissingDone = errors.New("sequence does not end in DONE")

	// ErrEventAfterDone is returned when anything follows a DONE, including
	// a second DONE.
	ErrEventAfterDone = errors.New("event after DONE")
)

// Replay reconstructs the final array by applying the mutating events, in
// order, to a copy of initial. COMPARE and DONE are ignored. initial is
// never modified.
func Replay(initial []int, events []Event) ([]int, error) {
	work := slices.Clone(initial)
	if work == nil {
		work = []int{}
	}

	for step, e := range events {
		if err := Apply(work, e); err != nil {
			return nil, fmt.Errorf("replay: step %d: %w", step, err)
		}
	}
	return work, nil
}

// Apply performs the mutation described by e on work in place.
func Apply(work []int, e Event) error {
	switch ev := e.(type) {
	case Swap:
		if !inRange(work, ev.I) || !inRange(work, ev.J) {
			return fmt.Errorf("%w: swap(%d, %d) on length %d", ErrIndexOutOfRange, ev.I, ev.J, len(work))
		}
		work[ev.I], work[ev.J] = work[ev.J], work[ev.I]
	case Set:
		if !inRange(work, ev.Index) {
			return fmt.Errorf("%w: set(%d) on length %d", ErrIndexOutOfRange, ev.Index, len(work))
		}
		work[ev.Index] = ev.Value
	case Compare, Done:
		// no mutation
	default:
		return fmt.Errorf("%w: %T", ErrInvalidEvent, e)
	}
	return nil
}

func inRange(work []int, i int) bool {
	return i >= 0 && i < len(work)
}

// Validate checks the terminal marker invariant: exactly one DONE, and it is
// the last event.
func Validate(events []Event) error {
	for i, e := range events {
		if e.Kind() != KindDone {
			continue
		}
		if i != len(events)-1 {
			return fmt.Errorf("%w: DONE at step %d of %d", ErrEventAfterDone, i, len(events))
		}
		return nil
	}
	return ErrMissingDone
}

// Stats counts events per tag.
type Stats struct {
	Compares int `json:"compares"`
	Swaps    int `json:"swaps"`
	Sets     int `json:"sets"`
	Done     int `json:"done"`
}

// Total returns the number of counted events.
func (s Stats) Total() int {
	return s.Compares + s.Swaps + s.Sets + s.Done
}

// Count tallies events by tag.
func Count(events []Event) Stats {
	var s Stats
	for _, e := range events {
		switch e.Kind() {
		case KindCompare:
			s.Compares++
		case KindSwap:
			s.Swaps++
		case KindSet:
			s.Sets++
		case KindDone:
			s.Done++
		}
	}
	return s
}
