package sort_suite

// SelectionSort returns a new ascending slice. Not stable: the swap into
// position i can carry an element past an equal one.
func SelectionSort(values []int) []int {
	a := clone(values)
	selectionSort(a, compare)
	return a
}

func selectionSort[E any](a []E, cmp cmpFunc[E]) {
	for i := 0; i < len(a)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(a); j++ {
			if cmp(a[j], a[minIdx]) < 0 {
				minIdx = j
			}
		}
		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
		}
	}
}
