package store

import (
	"path/filepath"
	"testing"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// createTestStore creates a new store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun builds a run for selection sort over [3,1,2].
func createTestRun(id string, seq int64) Run {
	steps := []trace.Event{
		trace.NewCompare(1, 0),
		trace.NewCompare(2, 1),
		trace.NewSwap(0, 1),
		trace.NewCompare(2, 1),
		trace.NewSwap(1, 2),
		trace.NewDone(),
	}
	return Run{
		ID:            id,
		Seq:           seq,
		Algorithm:     "selection",
		AlgorithmName: "Selection Sort",
		Initial:       []int{3, 1, 2},
		Sorted:        []int{1, 2, 3},
		Stats:         trace.Count(steps),
		InputDigest:   "input-digest",
		TraceDigest:   trace.MustTraceDigest(steps),
		Steps:         steps,
	}
}
