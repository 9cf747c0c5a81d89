package sort_suite

import (
	rnd "math/rand"
	"strconv"
	"testing"
)

// Run with: go test -run=^$ -bench=. -benchmem
func benchmarkAlgorithm(b *testing.B, fn SortFunc, n int) {
	input := randomInput(rnd.New(rnd.NewSource(42)), n, 1<<20)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fn(input)
	}
}

func BenchmarkAlgorithms(b *testing.B) {
	for _, s := range suite {
		for _, n := range []int{100, 1000} {
			fn, size := s.fn, n
			b.Run(s.name+"/"+strconv.Itoa(size), func(b *testing.B) {
				benchmarkAlgorithm(b, fn, size)
			})
		}
	}
}

func BenchmarkNLogN(b *testing.B) {
	for _, s := range suite {
		if s.name == "bubble" || s.name == "selection" || s.name == "insertion" {
			continue
		}
		fn := s.fn
		b.Run(s.name+"/100000", func(b *testing.B) {
			benchmarkAlgorithm(b, fn, 100000)
		})
	}
}

func BenchmarkHarness(b *testing.B) {
	input := randomInput(rnd.New(rnd.NewSource(42)), 2000, 1<<20)
	h := NewHarness(nil, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Run(input); err != nil {
			b.Fatal(err)
		}
	}
}
