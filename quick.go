package sort_suite

// quickInsertionThreshold: partitions this size or smaller are finished with
// insertion sort.
const quickInsertionThreshold = 12

// QuickSort returns a new ascending slice. Not stable.
//
// The pivot is the middle element and each level partitions three ways, so
// runs of values equal to the pivot are settled in one scan and never
// recursed on. Inputs full of duplicates stay linear per level.
func QuickSort(values []int) []int {
	return quickSort(clone(values), compare)
}

// quickSort may reuse a's backing array for its result.
func quickSort[E any](a []E, cmp cmpFunc[E]) []E {
	if len(a) <= quickInsertionThreshold {
		insertionSort(a, cmp)
		return a
	}

	pivot := a[len(a)/2]
	var lower, equal, greater []E
	for _, v := range a {
		switch c := cmp(v, pivot); {
		case c < 0:
			lower = append(lower, v)
		case c == 0:
			equal = append(equal, v)
		default:
			greater = append(greater, v)
		}
	}

	out := a[:0]
	out = append(out, quickSort(lower, cmp)...)
	out = append(out, equal...)
	out = append(out, quickSort(greater, cmp)...)
	return out
}
