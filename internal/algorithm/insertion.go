package algorithm

import "github.com/se04-aizu-2025/se04project-white-mocha/internal/observe"

// Insertion is insertion sort. Comparisons stay implicit in the shift
// condition; every write is reported as a SET.
type Insertion struct{}

func (Insertion) Name() string { return "Insertion Sort" }

func (Insertion) Sort(a []int, o observe.Observer) {
	o = observe.OrNoOp(o)

	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			o.Set(j+1, a[j])
			j--
		}
		a[j+1] = key
		o.Set(j+1, key)
	}
}
