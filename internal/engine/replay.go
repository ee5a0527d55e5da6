package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/store"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// Reproduction is the outcome of re-running one recorded run.
type Reproduction struct {
	RunID         string `json:"run_id"`
	Algorithm     string `json:"algorithm"`
	Steps         int    `json:"steps"`
	Deterministic bool   `json:"deterministic"`
	Reason        string `json:"reason,omitempty"`
}

// Reproduce re-runs a recorded run from its stored input and checks that the
// same algorithm produces the same trace. It also replays the stored steps
// over the stored initial array. Nothing is written to the log.
//
// A run whose algorithm is no longer registered is reported as
// non-deterministic rather than as an error.
func (e *Engine) Reproduce(ctx context.Context, run store.Run) (*Reproduction, error) {
	rep := &Reproduction{
		RunID:     run.ID,
		Algorithm: run.Algorithm,
		Steps:     len(run.Steps),
	}

	replayed, err := trace.Replay(run.Initial, run.Steps)
	if err != nil {
		rep.Reason = fmt.Sprintf("stored steps do not replay: %v", err)
		return rep, nil
	}
	if !slices.Equal(replayed, run.Sorted) {
		rep.Reason = "stored steps do not reproduce stored sorted array"
		return rep, nil
	}

	res, err := e.execute(ctx, run.Algorithm, run.Initial)
	if err != nil {
		if IsInputError(err) {
			rep.Reason = err.Error()
			return rep, nil
		}
		return nil, err
	}

	switch {
	case res.InputDigest != run.InputDigest:
		rep.Reason = "input digest differs"
	case res.TraceDigest != run.TraceDigest:
		rep.Reason = "trace digest differs"
	case !slices.Equal(res.Sorted, run.Sorted):
		rep.Reason = "sorted array differs"
	default:
		rep.Deterministic = true
	}
	return rep, nil
}

// ReproduceAll loads every run in the attached log, in seq order, and
// reproduces it. When runID is non-empty only that run is checked.
func (e *Engine) ReproduceAll(ctx context.Context, runID string) ([]Reproduction, error) {
	if e.store == nil {
		return nil, ErrNoStore
	}

	ids := []string{runID}
	if runID == "" {
		var err error
		if ids, err = e.store.ListRunIDs(ctx); err != nil {
			return nil, err
		}
	}

	reps := make([]Reproduction, 0, len(ids))
	for _, id := range ids {
		run, err := e.store.LoadRun(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("reproduce: %w", err)
		}
		rep, err := e.Reproduce(ctx, run)
		if err != nil {
			return nil, fmt.Errorf("reproduce %s: %w", id, err)
		}
		reps = append(reps, *rep)
	}
	return reps, nil
}

// Lookup returns a recorded run with its steps.
func (e *Engine) Lookup(ctx context.Context, runID string) (*Result, error) {
	if e.store == nil {
		return nil, ErrNoStore
	}
	run, err := e.store.LoadRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return ResultFromRecord(run), nil
}
