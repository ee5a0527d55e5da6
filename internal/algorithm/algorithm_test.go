package algorithm

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/observe"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

var allAlgorithms = []Algorithm{Bubble{}, Selection{}, Insertion{}, Merge{}}

// collect sorts a copy of input and returns the sorted slice and the
// finalized event sequence.
func collect(t *testing.T, alg Algorithm, input []int) ([]int, []trace.Event) {
	t.Helper()
	work := slices.Clone(input)
	c := observe.NewCollector()
	alg.Sort(work, c)
	require.NoError(t, c.Finalize())
	return work, c.Events().Events()
}

func testInputs() map[string][]int {
	rng := rand.New(rand.NewPCG(1, 2))
	inputs := map[string][]int{
		"empty":      {},
		"single":     {42},
		"pair":       {2, 1},
		"sorted":     {1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1},
		"duplicates": {3, 1, 3, 2, 1, 3},
		"negatives":  {0, -5, 7, -5, 2},
		"all equal":  {4, 4, 4, 4},
	}
	for _, size := range []int{7, 16, 33} {
		a := make([]int, size)
		for i := range a {
			a[i] = rng.IntN(100) - 50
		}
		inputs[fmt.Sprintf("random %d", size)] = a
	}
	return inputs
}

func TestAlgorithms_SortAndReplay(t *testing.T) {
	for _, alg := range allAlgorithms {
		for name, input := range testInputs() {
			t.Run(alg.Name()+"/"+name, func(t *testing.T) {
				sorted, events := collect(t, alg, input)

				want := slices.Clone(input)
				slices.Sort(want)
				if len(want) == 0 {
					want = []int{}
					sorted = []int{}
				}
				assert.Equal(t, want, sorted)
				assert.True(t, IsSorted(sorted))

				require.NoError(t, trace.Validate(events))
				assert.Equal(t, 1, trace.Count(events).Done)

				replayed, err := trace.Replay(input, events)
				require.NoError(t, err)
				assert.Equal(t, sorted, replayed)
			})
		}
	}
}

func TestAlgorithms_Unobserved(t *testing.T) {
	for _, alg := range allAlgorithms {
		t.Run(alg.Name(), func(t *testing.T) {
			a := []int{9, 3, 7, 1, 1, 0}
			Run(alg, a)
			assert.Equal(t, []int{0, 1, 1, 3, 7, 9}, a)

			b := []int{2, 1}
			alg.Sort(b, nil)
			assert.Equal(t, []int{1, 2}, b)
		})
	}
}

func TestAlgorithms_TrivialInputsEmitNothing(t *testing.T) {
	for _, alg := range allAlgorithms {
		for _, input := range [][]int{{}, {7}} {
			_, events := collect(t, alg, input)
			assert.Equal(t, []trace.Event{trace.NewDone()}, events, alg.Name())
		}
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Bubble Sort", Bubble{}.Name())
	assert.Equal(t, "Selection Sort", Selection{}.Name())
	assert.Equal(t, "Insertion Sort", Insertion{}.Name())
	assert.Equal(t, "Merge Sort", Merge{}.Name())
}

func TestBubble_AlreadySortedEarlyExit(t *testing.T) {
	_, events := collect(t, Bubble{}, []int{1, 2, 3})

	assert.Equal(t, trace.Stats{Compares: 2, Swaps: 0, Done: 1}, trace.Count(events))
}

func TestBubble_AlreadySortedEmitsOnePass(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	_, events := collect(t, Bubble{}, input)

	assert.Equal(t, len(input)-1, trace.Count(events).Compares)
	assert.Zero(t, trace.Count(events).Swaps)
}

func TestBubble_ExactSequence(t *testing.T) {
	_, events := collect(t, Bubble{}, []int{3, 1, 2})

	assert.Equal(t, []trace.Event{
		trace.NewCompare(0, 1),
		trace.NewSwap(0, 1),
		trace.NewCompare(1, 2),
		trace.NewSwap(1, 2),
		trace.NewCompare(0, 1),
		trace.NewDone(),
	}, events)
}

func TestSelection_SwapCount(t *testing.T) {
	sorted, events := collect(t, Selection{}, []int{5, 1, 4, 2, 8})

	assert.Equal(t, []int{1, 2, 4, 5, 8}, sorted)
	// i=0 min at 1 (swap), i=1 min at 3 (swap), i=2 and i=3 already in place
	assert.Equal(t, trace.Stats{Compares: 10, Swaps: 2, Done: 1}, trace.Count(events))

	var swaps []trace.Event
	for _, e := range events {
		if e.Kind() == trace.KindSwap {
			swaps = append(swaps, e)
		}
	}
	assert.Equal(t, []trace.Event{trace.NewSwap(0, 1), trace.NewSwap(1, 3)}, swaps)
}

func TestSelection_ComparesAgainstRunningMinimum(t *testing.T) {
	_, events := collect(t, Selection{}, []int{3, 1, 2})

	assert.Equal(t, []trace.Event{
		trace.NewCompare(1, 0),
		trace.NewCompare(2, 1),
		trace.NewSwap(0, 1),
		trace.NewCompare(2, 1),
		trace.NewSwap(1, 2),
		trace.NewDone(),
	}, events)
}

func TestInsertion_PairEmitsTwoSets(t *testing.T) {
	sorted, events := collect(t, Insertion{}, []int{2, 1})

	assert.Equal(t, []int{1, 2}, sorted)
	assert.Equal(t, []trace.Event{
		trace.NewSet(1, 2), // shift
		trace.NewSet(0, 1), // key placement
		trace.NewDone(),
	}, events)
}

func TestInsertion_NoCompareEvents(t *testing.T) {
	_, events := collect(t, Insertion{}, []int{4, 3, 2, 1})

	stats := trace.Count(events)
	assert.Zero(t, stats.Compares)
	assert.Zero(t, stats.Swaps)
	// 3 placements plus 1+2+3 shifts
	assert.Equal(t, 9, stats.Sets)
}

func TestMerge_ExactSequence(t *testing.T) {
	_, events := collect(t, Merge{}, []int{2, 1, 3})

	assert.Equal(t, []trace.Event{
		trace.NewSet(0, 1),
		trace.NewSet(1, 2),
		trace.NewSet(0, 1),
		trace.NewSet(1, 2),
		trace.NewSet(2, 3),
		trace.NewDone(),
	}, events)
}

func TestMerge_OnlySetEvents(t *testing.T) {
	input := []int{8, 3, 5, 1, 9, 2, 7}
	_, events := collect(t, Merge{}, input)

	stats := trace.Count(events)
	assert.Zero(t, stats.Compares)
	assert.Zero(t, stats.Swaps)
	assert.Positive(t, stats.Sets)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted(nil))
	assert.True(t, IsSorted([]int{1}))
	assert.True(t, IsSorted([]int{1, 1, 2}))
	assert.False(t, IsSorted([]int{2, 1}))
}
