// Package algorithm implements comparison sorts that report every operation
// through an observe.Observer.
//
// Each variant exercises a different subset of the observer contract:
//
//	Bubble     COMPARE, SWAP
//	Selection  COMPARE, SWAP (only when a swap happens)
//	Insertion  SET for every shift and for the key placement, no COMPARE
//	Merge      SET after every write into the shared array, no COMPARE or SWAP
//
// The event stream is a wire-visible contract; the asymmetry between
// variants is part of it.
package algorithm

import "github.com/se04-aizu-2025/se04project-white-mocha/internal/observe"

// Algorithm sorts an integer slice in place, ascending, while reporting each
// comparison, swap and auxiliary write to o.
type Algorithm interface {
	Name() string
	Sort(a []int, o observe.Observer)
}

// Run sorts a with no instrumentation, for plain correctness checks.
func Run(alg Algorithm, a []int) {
	alg.Sort(a, observe.NoOp{})
}

// IsSorted reports whether a is non-decreasing.
func IsSorted(a []int) bool {
	for i := 0; i+1 < len(a); i++ {
		if a[i] > a[i+1] {
			return false
		}
	}
	return true
}
