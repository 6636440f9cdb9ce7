// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the inversion kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matinv/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{4, 8, 12}

// sinks to defeat dead-code elimination
var (
	sinkR *matrix.Report
	sinkF float64
)

func BenchmarkInvertSchulz(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := DiagonallyDominant(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.InvertSchulz(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = r
			}
		})
	}
}

func BenchmarkInvertLUP(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := DiagonallyDominant(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.InvertLUP(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = r
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 6, 8} {
		b.Run(fmt.Sprintf("cofactor/n=%d", n), func(b *testing.B) {
			a := RandomDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
		b.Run(fmt.Sprintf("lu/n=%d", n), func(b *testing.B) {
			a := RandomDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.DeterminantLU(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
