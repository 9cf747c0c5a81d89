package sort_suite

// InsertionSort returns a new ascending slice. Stable.
func InsertionSort(values []int) []int {
	a := clone(values)
	insertionSort(a, compare)
	return a
}

// insertionSort sorts a in place. Only strictly greater elements are shifted,
// which keeps equal keys in their original order.
func insertionSort[E any](a []E, cmp cmpFunc[E]) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && cmp(key, a[j]) < 0 {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
