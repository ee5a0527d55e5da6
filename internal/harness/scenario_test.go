package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_Full(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/selection_basic.yaml")
	require.NoError(t, err)

	assert.Equal(t, "selection_basic", s.Name)
	assert.Equal(t, "selection", s.Algorithm)
	assert.Equal(t, []int{5, 1, 4, 2, 8}, s.Input)
	require.NotNil(t, s.Expect)
	assert.Equal(t, []int{1, 2, 4, 5, 8}, s.Expect.Sorted)
	require.NotNil(t, s.Expect.Swaps)
	assert.Equal(t, 2, *s.Expect.Swaps)
	assert.Nil(t, s.Expect.Sets, "absent count is not checked")
	require.Len(t, s.Assertions, 3)
	assert.Equal(t, AssertTraceOrder, s.Assertions[1].Type)
	assert.Len(t, s.Assertions[1].Events, 3)
}

func TestParseScenario_Minimal(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: empty
description: "empty input"
algorithm: merge
input: []
`))
	require.NoError(t, err)
	assert.Nil(t, s.Expect)
	assert.Empty(t, s.Input)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errLike string
	}{
		{
			name:    "unknown top-level field",
			yaml:    "name: a\ndescription: d\nalgorithm: bubble\ninput: [1]\nexpected: {}\n",
			errLike: "field expected not found",
		},
		{
			name:    "missing algorithm",
			yaml:    "name: a\ndescription: d\ninput: [1]\n",
			errLike: "algorithm",
		},
		{
			name:    "bad name",
			yaml:    "name: Has Spaces\ndescription: d\nalgorithm: bubble\ninput: [1]\n",
			errLike: "name",
		},
		{
			name:    "negative count",
			yaml:    "name: a\ndescription: d\nalgorithm: bubble\ninput: [1]\nexpect:\n  swaps: -1\n",
			errLike: "swaps",
		},
		{
			name:    "event with foreign field",
			yaml:    "name: a\ndescription: d\nalgorithm: bubble\ninput: [1]\nassertions:\n  - type: trace_contains\n    event: {type: DONE, i: 0}\n",
			errLike: "invalid scenario",
		},
		{
			name:    "unknown assertion type",
			yaml:    "name: a\ndescription: d\nalgorithm: bubble\ninput: [1]\nassertions:\n  - type: final_state\n",
			errLike: "invalid scenario",
		},
		{
			name:    "non-integer input",
			yaml:    "name: a\ndescription: d\nalgorithm: bubble\ninput: [1, x]\n",
			errLike: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errLike)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDir(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)

	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"bubble_sorted", "insertion_pair", "merge_three", "selection_basic"}, names)
}

func TestLoadDir_DuplicateNames(t *testing.T) {
	dir := t.TempDir()
	doc := "name: same\ndescription: d\nalgorithm: bubble\ninput: [1]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte(doc), 0o644))

	_, err := LoadDir(dir)
	assert.ErrorIs(t, err, ErrInvalidScenario)
}
