package sort_suite

import (
	"fmt"
	"math/bits"
)

// VerifyFailReason says why an output was rejected. Zero means it passed.
type VerifyFailReason uint

const (
	FailedLength VerifyFailReason = iota + 1
	FailedSetFidelity
	FailedSortedness
)

func (r VerifyFailReason) String() string {
	switch r {
	case 0:
		return "ok"
	case FailedLength:
		return "length changed"
	case FailedSetFidelity:
		return "not a permutation of the input"
	case FailedSortedness:
		return "not in ascending order"
	}
	return fmt.Sprintf("VerifyFailReason(%d)", uint(r))
}

// Verify checks output against the input it was sorted from. Checks run
// cheapest first.
func Verify(input, output []int) VerifyFailReason {
	if len(input) != len(output) {
		return FailedLength
	}
	if !IsSorted(output) {
		return FailedSortedness
	}
	if !IsPermutation(input, output) {
		return FailedSetFidelity
	}
	return 0
}

func IsSorted(values []int) bool {
	for i := 1; i < len(values); i++ {
		if compare(values[i-1], values[i]) > 0 {
			return false
		}
	}
	return true
}

// IsPermutation reports whether a and b hold the same multiset of values.
func IsPermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// CountInversions returns the number of pairs i < j with values[i] >
// values[j]. values is not modified.
func CountInversions(values []int) uint64 {
	a := clone(values)
	return countInversions(a, make([]int, len(a)))
}

// countInversions merge sorts a using buf as scratch and counts, at each
// merge, how many left elements every right element jumps over.
func countInversions(a, buf []int) uint64 {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	inversions := countInversions(a[:mid], buf[:mid]) + countInversions(a[mid:], buf[mid:])

	copy(buf, a)
	l, r, k := 0, mid, 0
	for l < mid && r < len(a) {
		if buf[l] <= buf[r] {
			a[k] = buf[l]
			l++
		} else {
			a[k] = buf[r]
			r++
			inversions += uint64(mid - l)
		}
		k++
	}
	k += copy(a[k:], buf[l:mid])
	copy(a[k:], buf[r:])
	return inversions
}

// Sortedness scores values from 0 (reversed) to 100 (ascending) by the share
// of inversions against the n(n-1)/2 maximum.
func Sortedness(values []int) byte {
	n := uint64(len(values))
	if n < 2 {
		return 100
	}
	maxInversions := n / 2 * (n - 1)
	if n%2 == 1 {
		maxInversions = n * ((n - 1) / 2)
	}
	return sortednessScore(CountInversions(values), maxInversions)
}

// sortednessScore computes 100 - inversions*100/maxInversions with a 128-bit
// intermediate product. inversions never exceeds maxInversions.
func sortednessScore(inversions, maxInversions uint64) byte {
	hi, lo := bits.Mul64(inversions, 100)
	share, _ := bits.Div64(hi, lo, maxInversions)
	return byte(100 - share)
}
