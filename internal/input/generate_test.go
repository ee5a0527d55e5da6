package input

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnique(t *testing.T) {
	rng := NewRand(42)

	got, err := Unique(10, 20, rng)
	require.NoError(t, err)
	require.Len(t, got, 10)

	seen := make(map[int]bool)
	for _, v := range got {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 20)
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}

func TestUnique_FullRangeIsPermutation(t *testing.T) {
	got, err := Unique(5, 5, NewRand(7))
	require.NoError(t, err)

	sorted := slices.Clone(got)
	slices.Sort(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted)
}

func TestUnique_InvalidRange(t *testing.T) {
	tests := []struct {
		name       string
		count, max int
	}{
		{"zero count", 0, 10},
		{"negative count", -1, 10},
		{"zero max", 1, 0},
		{"count above max", 11, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unique(tt.count, tt.max, NewRand(1))
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestRandom(t *testing.T) {
	got := Random(50, 10, NewRand(3))
	require.Len(t, got, 50)
	for _, v := range got {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}

	assert.Equal(t, []int{0, 0}, Random(2, 0, NewRand(3)))
}

func TestNewRand_Deterministic(t *testing.T) {
	assert.Equal(t, Random(20, 1000, NewRand(99)), Random(20, 1000, NewRand(99)))
}
