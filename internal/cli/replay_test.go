package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/engine"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/store"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/testutil"
)

// recordRuns writes one run per input to a fresh run log and returns its
// path and the recorded results.
func recordRuns(t *testing.T, key string, inputs ...[]int) (string, []*engine.Result) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	eng := engine.New(registry.Default(),
		engine.WithStore(st),
		engine.WithIDGenerator(testutil.NewSequenceGenerator(key)),
	)
	results := make([]*engine.Result, 0, len(inputs))
	for _, in := range inputs {
		res, err := eng.Run(context.Background(), key, in)
		require.NoError(t, err)
		results = append(results, res)
	}
	return dbPath, results
}

func TestReplayMissingDatabaseFlag(t *testing.T) {
	_, err := execute(t, "replay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReplayDatabaseNotFound(t *testing.T) {
	_, err := execute(t, "replay", "--db", filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReplayEmptyDatabase(t *testing.T) {
	dbPath, _ := recordRuns(t, "bubble")

	out, err := execute(t, "replay", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs found")
}

func TestReplayDeterministic(t *testing.T) {
	dbPath, results := recordRuns(t, "merge", []int{3, 1, 2}, []int{}, []int{5, 5, 1})

	out, err := execute(t, "replay", "--db", dbPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Replay Summary: 3 run(s)")
	assert.Contains(t, out, results[0].ID)
	assert.Contains(t, out, "All runs verified deterministic")
}

func TestReplaySingleRun(t *testing.T) {
	dbPath, results := recordRuns(t, "insertion", []int{2, 1}, []int{1})

	out, err := execute(t, "--format", "json", "replay", "--db", dbPath, "--run", results[1].ID)
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   ReplayResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.AllDeterministic)
	require.Len(t, resp.Data.Runs, 1)
	assert.Equal(t, results[1].ID, resp.Data.Runs[0].RunID)
	assert.Equal(t, 1, resp.Data.Runs[0].Steps)
}

func TestReplayUnknownRun(t *testing.T) {
	dbPath, _ := recordRuns(t, "bubble", []int{2, 1})

	_, err := execute(t, "replay", "--db", dbPath, "--run", "bubble-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReplayDetectsTamperedDigest(t *testing.T) {
	dbPath, results := recordRuns(t, "bubble", []int{3, 2, 1})

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	tampered := results[0].Record()
	tampered.ID = "tampered"
	tampered.Seq = results[0].Seq + 1
	tampered.TraceDigest = "0000"
	_, _, err = st.WriteRun(context.Background(), tampered)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := execute(t, "replay", "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Warning: trace digest differs")
	assert.Contains(t, out, "Determinism verification failed")

	out, err = execute(t, "--format", "json", "replay", "--db", dbPath)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeDeterminism, resp.Error.Code)
}
