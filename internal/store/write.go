package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// Run is one recorded sort: its input, outcome, digests and full event
// sequence.
type Run struct {
	ID            string
	Seq           int64
	Algorithm     string
	AlgorithmName string
	Initial       []int
	Sorted        []int
	Stats         trace.Stats
	InputDigest   string
	TraceDigest   string

	// Steps is populated by WriteRun callers and by LoadRun; ReadRun leaves
	// it nil.
	Steps []trace.Event
}

// WriteRun appends a run and all of its steps in a single transaction and
// returns the seq the row was stored under. run.Seq is a lower bound: the
// stored seq is the larger of it and one past the highest seq in the log,
// chosen inside the insert, so writers sharing one file never collide.
// Returns inserted=false without touching steps when the run id already
// exists, so re-recording a run is a no-op.
func (s *Store) WriteRun(ctx context.Context, run Run) (seq int64, inserted bool, err error) {
	initialJSON, err := marshalInts(run.Initial)
	if err != nil {
		return 0, false, fmt.Errorf("write run: %w", err)
	}
	sortedJSON, err := marshalInts(run.Sorted)
	if err != nil {
		return 0, false, fmt.Errorf("write run: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	err = tx.QueryRowContext(ctx, `
		INSERT INTO runs
		(id, seq, algorithm, algorithm_name, initial, sorted, input_digest, trace_digest,
		 compares, swaps, sets, step_count)
		VALUES (?, MAX(?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM runs)), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
		RETURNING seq
	`,
		run.ID,
		run.Seq,
		run.Algorithm,
		run.AlgorithmName,
		initialJSON,
		sortedJSON,
		run.InputDigest,
		run.TraceDigest,
		run.Stats.Compares,
		run.Stats.Swaps,
		run.Stats.Sets,
		len(run.Steps),
	).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("write run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO steps (run_id, step, type, i, j, idx, value)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, false, fmt.Errorf("write run: prepare steps: %w", err)
	}
	defer stmt.Close()

	for step, e := range run.Steps {
		i, j, idx, value := stepColumns(e)
		if _, err := stmt.ExecContext(ctx, run.ID, step, string(e.Kind()), i, j, idx, value); err != nil {
			return 0, false, fmt.Errorf("write run: step %d: %w", step, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("write run: commit: %w", err)
	}
	return seq, true, nil
}
