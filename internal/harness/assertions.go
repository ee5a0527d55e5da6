package harness

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string        // Assertion type for categorization
	Expected string        // Human-readable expected outcome
	Actual   string        // Human-readable actual outcome
	Steps    []trace.Event // Full trace for debugging context
}

// maxTraceLines bounds the trace dump in AssertionError.
const maxTraceLines = 40

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for i, ev := range e.Steps {
		if i == maxTraceLines {
			fmt.Fprintf(&buf, "  ... (%d more events)\n", len(e.Steps)-maxTraceLines)
			break
		}
		fmt.Fprintf(&buf, "  [%d] %s\n", i, ev)
	}

	return buf.String()
}

// wireEvent converts a YAML event mapping into an event.
func wireEvent(m map[string]any) (trace.Event, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return trace.UnmarshalEvent(data)
}

func assertTraceContains(steps []trace.Event, a Assertion) error {
	want, err := wireEvent(a.Event)
	if err != nil {
		return fmt.Errorf("trace_contains: %w", err)
	}

	if slices.Contains(steps, want) {
		return nil
	}
	return &AssertionError{
		Type:     AssertTraceContains,
		Expected: fmt.Sprintf("event %s", want),
		Actual:   "not found in trace",
		Steps:    steps,
	}
}

// assertTraceOrder checks that the events appear in order. Intervening
// events are allowed; each expected event must come after the previous
// match.
func assertTraceOrder(steps []trace.Event, a Assertion) error {
	pos := 0
	for n, m := range a.Events {
		want, err := wireEvent(m)
		if err != nil {
			return fmt.Errorf("trace_order: event %d: %w", n, err)
		}

		idx := slices.Index(steps[pos:], want)
		if idx < 0 {
			return &AssertionError{
				Type:     AssertTraceOrder,
				Expected: fmt.Sprintf("event %d (%s) after step %d", n, want, pos-1),
				Actual:   "not found in remaining trace",
				Steps:    steps,
			}
		}
		pos += idx + 1
	}
	return nil
}

func assertTraceCount(steps []trace.Event, a Assertion) error {
	count := 0
	for _, ev := range steps {
		if string(ev.Kind()) == a.Kind {
			count++
		}
	}

	if count != a.Count {
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d %s events", a.Count, a.Kind),
			Actual:   fmt.Sprintf("%d events", count),
			Steps:    steps,
		}
	}
	return nil
}

// EvaluateAssertions runs every assertion and returns the failure messages
// in assertion order.
func EvaluateAssertions(steps []trace.Event, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertTraceContains:
			err = assertTraceContains(steps, a)
		case AssertTraceOrder:
			err = assertTraceOrder(steps, a)
		case AssertTraceCount:
			err = assertTraceCount(steps, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			failures = append(failures, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return failures
}

// checkExpect compares the outcome against the scenario's expect block.
func checkExpect(exp *Expect, sorted []int, stats trace.Stats) []string {
	if exp == nil {
		return nil
	}

	var failures []string
	if exp.Sorted != nil && !slices.Equal(exp.Sorted, sorted) {
		failures = append(failures, fmt.Sprintf("expect.sorted: want %v, got %v", exp.Sorted, sorted))
	}
	for _, c := range []struct {
		field string
		want  *int
		got   int
	}{
		{"compares", exp.Compares, stats.Compares},
		{"swaps", exp.Swaps, stats.Swaps},
		{"sets", exp.Sets, stats.Sets},
	} {
		if c.want != nil && *c.want != c.got {
			failures = append(failures, fmt.Sprintf("expect.%s: want %d, got %d", c.field, *c.want, c.got))
		}
	}
	return failures
}
