package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/engine"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/store"
)

// Run executes a scenario against reg and returns the result.
//
// Execution flow:
//  1. Create fresh in-memory run log
//  2. Run the algorithm with replay verification and a fixed run id
//  3. Reload the recorded run and compare its steps
//  4. Check expect block and assertions
//
// A failing run (unknown algorithm, replay mismatch) is reported in the
// result. The returned error is reserved for infrastructure failures.
func Run(reg *registry.Registry, scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	eng := engine.New(reg,
		engine.WithStore(st),
		engine.WithVerify(true),
		engine.WithMaxArraySize(0),
		engine.WithIDGenerator(engine.NewFixedGenerator(scenario.Name)),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	ctx := context.Background()
	result := NewResult()

	res, err := eng.Run(ctx, scenario.Algorithm, scenario.Input)
	if err != nil {
		result.AddError(err.Error())
		return result, nil
	}
	result.Sorted = res.Sorted
	result.Steps = res.Steps
	result.Stats = res.Stats

	recorded, err := eng.Lookup(ctx, res.ID)
	if err != nil {
		return nil, fmt.Errorf("reload run: %w", err)
	}
	if !slices.Equal(recorded.Steps, res.Steps) {
		result.AddError("recorded steps differ from returned steps")
	}

	for _, msg := range checkExpect(scenario.Expect, res.Sorted, res.Stats) {
		result.AddError(msg)
	}
	for _, msg := range EvaluateAssertions(res.Steps, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}
