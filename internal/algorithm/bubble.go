package algorithm

import "github.com/se04-aizu-2025/se04project-white-mocha/internal/observe"

// Bubble is bubble sort with early exit after a pass without swaps.
type Bubble struct{}

func (Bubble) Name() string { return "Bubble Sort" }

func (Bubble) Sort(a []int, o observe.Observer) {
	o = observe.OrNoOp(o)
	n := len(a)

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			o.Compare(j, j+1)
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				o.Swap(j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}
