package sort_suite

// MergeSort returns a new ascending slice. Stable.
func MergeSort(values []int) []int {
	return mergeSort(clone(values), compare)
}

// mergeSort never writes to a; every level returns a freshly merged slice.
func mergeSort[E any](a []E, cmp cmpFunc[E]) []E {
	if len(a) <= 1 {
		return a
	}

	mid := len(a) / 2
	return merge(mergeSort(a[:mid], cmp), mergeSort(a[mid:], cmp), cmp)
}

// merge takes from left on ties.
func merge[E any](left, right []E, cmp cmpFunc[E]) []E {
	out := make([]E, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if cmp(left[l], right[r]) <= 0 {
			out = append(out, left[l])
			l++
		} else {
			out = append(out, right[r])
			r++
		}
	}
	out = append(out, left[l:]...)
	out = append(out, right[r:]...)
	return out
}
