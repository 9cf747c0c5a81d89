package sort_suite

// HeapSort returns a new ascending slice. Not stable. Works inside its copy
// with no further allocation.
func HeapSort(values []int) []int {
	a := clone(values)
	heapSort(a, compare)
	return a
}

func heapSort[E any](a []E, cmp cmpFunc[E]) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n, cmp)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, 0, end, cmp)
	}
}

// siftDown restores the max-heap property for the subtree rooted at root,
// considering only a[:n].
func siftDown[E any](a []E, root, n int, cmp cmpFunc[E]) {
	for {
		largest := root
		left := 2*root + 1
		right := left + 1
		if left < n && cmp(a[left], a[largest]) > 0 {
			largest = left
		}
		if right < n && cmp(a[right], a[largest]) > 0 {
			largest = right
		}
		if largest == root {
			return
		}
		a[root], a[largest] = a[largest], a[root]
		root = largest
	}
}
