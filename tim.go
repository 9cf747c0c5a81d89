package sort_suite

// minRun is the length of the runs sorted by insertion before merging.
const minRun = 32

// TimSort returns a new ascending slice. Stable.
//
// Fixed-size runs are insertion sorted, then merged bottom-up with doubling
// width. Both phases keep equal values in input order.
func TimSort(values []int) []int {
	a := clone(values)
	timSort(a, compare)
	return a
}

func timSort[E any](a []E, cmp cmpFunc[E]) {
	n := len(a)
	for lo := 0; lo < n; lo += minRun {
		insertionSort(a[lo:min(lo+minRun, n)], cmp)
	}

	for width := minRun; width < n; width *= 2 {
		for lo := 0; lo < n-width; lo += 2 * width {
			mid := lo + width
			hi := min(lo+2*width, n)
			copy(a[lo:hi], merge(a[lo:mid], a[mid:hi], cmp))
		}
	}
}
