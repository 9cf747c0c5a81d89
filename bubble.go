package sort_suite

// BubbleSort returns a new ascending slice. Passes stop as soon as one of them
// makes no swaps, so already sorted input costs a single pass.
func BubbleSort(values []int) []int {
	a := clone(values)
	bubbleSort(a, compare)
	return a
}

func bubbleSort[E any](a []E, cmp cmpFunc[E]) {
	for end := len(a) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if cmp(a[i], a[i+1]) > 0 {
				a[i], a[i+1] = a[i+1], a[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
