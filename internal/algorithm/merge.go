package algorithm

import "github.com/se04-aizu-2025/se04project-white-mocha/internal/observe"

// Merge is top-down merge sort. It is stable: on ties the left run wins.
// Every write back into the shared array is reported as a SET.
type Merge struct{}

func (Merge) Name() string { return "Merge Sort" }

func (Merge) Sort(a []int, o observe.Observer) {
	if len(a) <= 1 {
		return
	}
	mergeSort(a, 0, len(a)-1, observe.OrNoOp(o))
}

func mergeSort(a []int, left, right int, o observe.Observer) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2

	mergeSort(a, left, mid, o)
	mergeSort(a, mid+1, right, o)
	merge(a, left, mid, right, o)
}

// merge combines the sorted runs a[left..mid] and a[mid+1..right].
func merge(a []int, left, mid, right int, o observe.Observer) {
	l := make([]int, mid-left+1)
	r := make([]int, right-mid)
	copy(l, a[left:mid+1])
	copy(r, a[mid+1:right+1])

	i, j, k := 0, 0, left
	write := func(v int) {
		a[k] = v
		o.Set(k, v)
		k++
	}

	for i < len(l) && j < len(r) {
		if l[i] <= r[j] {
			write(l[i])
			i++
		} else {
			write(r[j])
			j++
		}
	}
	for ; i < len(l); i++ {
		write(l[i])
	}
	for ; j < len(r); j++ {
		write(r[j])
	}
}
