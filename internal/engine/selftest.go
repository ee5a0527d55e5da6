package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/algorithm"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/input"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
)

// SelfTestResult is the pass/fail outcome for one algorithm.
type SelfTestResult struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Trials  int    `json:"trials"`
	Passed  bool   `json:"passed"`
	Failure string `json:"failure,omitempty"`
}

// SelfTest runs every registered algorithm unobserved on trials random
// arrays of the given size with values in [0, bound) and checks the result
// against the standard library sort. Each algorithm stops at its first
// failing trial.
func SelfTest(ctx context.Context, reg *registry.Registry, trials, size, bound int, rng *rand.Rand) ([]SelfTestResult, error) {
	results := make([]SelfTestResult, 0, reg.Len())

	for _, entry := range reg.All() {
		res := SelfTestResult{Key: entry.Key, Name: entry.Algorithm.Name(), Passed: true}

		for trial := 0; trial < trials; trial++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			original := input.Random(size, bound, rng)
			work := slices.Clone(original)
			algorithm.Run(entry.Algorithm, work)
			res.Trials++

			want := slices.Clone(original)
			slices.Sort(want)
			if !slices.Equal(work, want) {
				res.Passed = false
				res.Failure = fmt.Sprintf("trial %d: input %v sorted to %v", trial, original, work)
				break
			}
		}

		results = append(results, res)
	}

	return results, nil
}

// AllPassed reports whether every result passed.
func AllPassed(results []SelfTestResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
