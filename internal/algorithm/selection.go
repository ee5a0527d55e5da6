package algorithm

import "github.com/se04-aizu-2025/se04project-white-mocha/internal/observe"

// Selection is selection sort. The running minimum update is silent; a SWAP
// is reported only when the minimum is not already in place.
type Selection struct{}

func (Selection) Name() string { return "Selection Sort" }

func (Selection) Sort(a []int, o observe.Observer) {
	o = observe.OrNoOp(o)
	n := len(a)

	for i := 0; i < n-1; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			o.Compare(j, minIndex)
			if a[j] < a[minIndex] {
				minIndex = j
			}
		}
		if minIndex != i {
			a[i], a[minIndex] = a[minIndex], a[i]
			o.Swap(i, minIndex)
		}
	}
}
