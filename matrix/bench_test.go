// Package matrix_test provides benchmarks for the matrix kernels, using
// deterministic random fills. Determinant/Inverse sizes stay tiny:
// the cofactor expansion is O(n!).
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matrixcalc/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkF float64
	sinkS string
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomInts(b, n, n, 1337)
			y := RandomInts(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomInts(b, n, n, 11)
			y := RandomInts(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Multiply(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 5, 7} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomInts(b, n, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := x.Determinant()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{2, 4, 6} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomInvertible(b, n, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Inverse()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkRender(b *testing.B) {
	x := RandomInts(b, 32, 32, 3).Scale(0.5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = x.String()
	}
}
