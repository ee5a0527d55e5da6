package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

var (
	// ErrRunNotFound is returned when no run has the requested id.
	ErrRunNotFound = errors.New("run not found")

	// ErrCorruptStep is returned when a stored step cannot be decoded.
	ErrCorruptStep = errors.New("corrupt step row")
)

// ReadRun returns the run header for id. Steps are not loaded; use
// ReadSteps or LoadRun.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, algorithm, algorithm_name, initial, sorted, input_digest, trace_digest,
		       compares, swaps, sets, step_count
		FROM runs
		WHERE id = ?
	`, id)

	var (
		run         Run
		initialJSON string
		sortedJSON  string
		stepCount   int
	)
	err := row.Scan(
		&run.ID,
		&run.Seq,
		&run.Algorithm,
		&run.AlgorithmName,
		&initialJSON,
		&sortedJSON,
		&run.InputDigest,
		&run.TraceDigest,
		&run.Stats.Compares,
		&run.Stats.Swaps,
		&run.Stats.Sets,
		&stepCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}

	if run.Initial, err = unmarshalInts(initialJSON); err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	if run.Sorted, err = unmarshalInts(sortedJSON); err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	if stepCount > 0 {
		run.Stats.Done = 1
	}

	return run, nil
}

// ReadSteps returns the events of a run in step order.
// Returns an empty slice (not nil) for a run without steps.
func (s *Store) ReadSteps(ctx context.Context, runID string) ([]trace.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT type, i, j, idx, value
		FROM steps
		WHERE run_id = ?
		ORDER BY step ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()

	events := []trace.Event{}
	for rows.Next() {
		var (
			kind             string
			i, j, idx, value sql.NullInt64
		)
		if err := rows.Scan(&kind, &i, &j, &idx, &value); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		e, err := stepEvent(kind, i, j, idx, value)
		if err != nil {
			return nil, fmt.Errorf("run %s step %d: %w", runID, len(events), err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate steps: %w", err)
	}

	return events, nil
}

// ListRunIDs returns every run id ordered by seq.
// Returns an empty slice (not nil) when the log is empty.
func (s *Store) ListRunIDs(ctx context.Context) ([]string, error) {
	return s.queryIDs(ctx, `
		SELECT id FROM runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
}

// ListRunIDsByAlgorithm returns the ids of runs made with one algorithm,
// ordered by seq.
func (s *Store) ListRunIDsByAlgorithm(ctx context.Context, algorithm string) ([]string, error) {
	return s.queryIDs(ctx, `
		SELECT id FROM runs
		WHERE algorithm = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, algorithm)
}

func (s *Store) queryIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query run ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run ids: %w", err)
	}
	return ids, nil
}

// MaxSeq returns the highest recorded seq, or 0 for an empty log. The
// engine resumes its clock from this value.
func (s *Store) MaxSeq(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(seq) FROM runs").Scan(&seq); err != nil {
		return 0, fmt.Errorf("max seq: %w", err)
	}
	return seq.Int64, nil
}
