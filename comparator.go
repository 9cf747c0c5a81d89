package sort_suite

// compare is the total order every algorithm in the suite sorts by.
func compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// cmpFunc is the shape of compare. The algorithms are written against it so
// the same code can order tagged values in tests; the exported API only ever
// passes compare.
type cmpFunc[E any] func(a, b E) int

// clone gives each algorithm its own working copy so the caller's slice is
// never written to.
func clone[E any](values []E) []E {
	out := make([]E, len(values))
	copy(out, values)
	return out
}
