package store

import (
	"context"
	"fmt"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// LoadRun returns a run with its steps, checking that the stored step
// stream agrees with the stored header (count and per-tag stats).
func (s *Store) LoadRun(ctx context.Context, id string) (Run, error) {
	run, err := s.ReadRun(ctx, id)
	if err != nil {
		return Run{}, err
	}

	steps, err := s.ReadSteps(ctx, id)
	if err != nil {
		return Run{}, fmt.Errorf("load run %s: %w", id, err)
	}

	if got := trace.Count(steps); got != run.Stats {
		return Run{}, fmt.Errorf("load run %s: %w: header stats %+v, steps %+v", id, ErrCorruptStep, run.Stats, got)
	}
	run.Steps = steps
	return run, nil
}
