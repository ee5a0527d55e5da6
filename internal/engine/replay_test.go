package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

func TestReproduceAll_Deterministic(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	e := New(registry.Default(), WithStore(s), WithIDGenerator(NewFixedGenerator("r1", "r2", "r3")))

	for _, key := range []string{"bubble", "insertion", "merge"} {
		_, err := e.Run(ctx, key, []int{4, 2, 9, 1})
		require.NoError(t, err)
	}

	reps, err := e.ReproduceAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, reps, 3)
	for _, rep := range reps {
		assert.True(t, rep.Deterministic, "%s: %s", rep.RunID, rep.Reason)
		assert.Empty(t, rep.Reason)
	}
	assert.Equal(t, "r1", reps[0].RunID)

	one, err := e.ReproduceAll(ctx, "r2")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "insertion", one[0].Algorithm)
}

func TestReproduce_TamperedSteps(t *testing.T) {
	e := New(registry.Default())
	ctx := context.Background()

	res, err := e.Run(ctx, "bubble", []int{2, 1})
	require.NoError(t, err)

	run := res.Record()
	run.Steps = []trace.Event{trace.NewDone()}

	rep, err := e.Reproduce(ctx, run)
	require.NoError(t, err)
	assert.False(t, rep.Deterministic)
	assert.Contains(t, rep.Reason, "do not reproduce")
}

func TestReproduce_DigestDiffers(t *testing.T) {
	e := New(registry.Default())
	ctx := context.Background()

	res, err := e.Run(ctx, "bubble", []int{2, 1})
	require.NoError(t, err)

	run := res.Record()
	run.TraceDigest = "stale"

	rep, err := e.Reproduce(ctx, run)
	require.NoError(t, err)
	assert.False(t, rep.Deterministic)
	assert.Equal(t, "trace digest differs", rep.Reason)
}

func TestReproduce_AlgorithmNoLongerRegistered(t *testing.T) {
	ctx := context.Background()
	res, err := New(registry.Default()).Run(ctx, "merge", []int{2, 1})
	require.NoError(t, err)

	rep, err := New(registry.New()).Reproduce(ctx, res.Record())
	require.NoError(t, err)
	assert.False(t, rep.Deterministic)
	assert.Contains(t, rep.Reason, "unknown algorithm")
}

func TestReproduceAll_NoStore(t *testing.T) {
	_, err := New(registry.Default()).ReproduceAll(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoStore)
}
