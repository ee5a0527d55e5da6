package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

func intPtr(v int) *int { return &v }

func TestRun_Pass(t *testing.T) {
	result, err := Run(registry.Default(), &Scenario{
		Name:      "bubble_reverse",
		Algorithm: "bubble",
		Input:     []int{3, 2, 1},
		Expect:    &Expect{Sorted: []int{1, 2, 3}, Swaps: intPtr(3)},
	})
	require.NoError(t, err)

	assert.True(t, result.Pass, result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, []int{1, 2, 3}, result.Sorted)
	assert.Equal(t, trace.NewDone(), result.Steps[len(result.Steps)-1])
}

func TestRun_ExpectFailure(t *testing.T) {
	result, err := Run(registry.Default(), &Scenario{
		Name:      "wrong_count",
		Algorithm: "bubble",
		Input:     []int{1, 2, 3},
		Expect:    &Expect{Compares: intPtr(3)},
	})
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Equal(t, []string{"expect.compares: want 3, got 2"}, result.Errors)
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	result, err := Run(registry.Default(), &Scenario{
		Name:      "unknown",
		Algorithm: "quick",
		Input:     []int{1},
	})
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unknown algorithm")
	assert.Empty(t, result.Steps)
}

func TestRun_Scenarios(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, registry.Default(), s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}
