// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matinv/matrix"
)

// Tolerances shared by the kernel tests.
const (
	tolIdentity = 1e-6 // A·A⁻¹ against I
	tolAgree    = 1e-4 // Schulz against LUP
	tolExact    = 1e-12
)

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *matrix.Dense, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustMul returns a×b or fails the test.
func MustMul(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	p, err := matrix.Mul(a, b)
	if err != nil {
		tb.Fatalf("Mul: %v", err)
	}

	return p
}

// RandomDense fills an n×n matrix with uniform values in [-1, 1) from a fixed seed.
func RandomDense(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(tb, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// DiagonallyDominant returns RandomDense with n added to each diagonal entry,
// which keeps the matrix well conditioned for both inverters.
func DiagonallyDominant(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m := RandomDense(tb, n, seed)
	for i := 0; i < n; i++ {
		if err := m.Set(i, i, MustAt(tb, m, i, i)+float64(n)); err != nil {
			tb.Fatalf("Set(%d,%d): %v", i, i, err)
		}
	}

	return m
}

// AssertIdentity checks that m equals I entry-wise within tol.
func AssertIdentity(tb testing.TB, m *matrix.Dense, tol float64) {
	tb.Helper()
	n := m.Rows()
	var want float64
	for i := 0; i < n; i++ {
		for j := 0; j < m.Cols(); j++ {
			want = 0
			if i == j {
				want = 1
			}
			if got := MustAt(tb, m, i, j); math.Abs(got-want) > tol {
				tb.Fatalf("[%d,%d] = %v, want %v (tol %g)", i, j, got, want, tol)
			}
		}
	}
}

// CompareExact asserts m equals want cell by cell without tolerance.
func CompareExact(tb testing.TB, want [][]float64, m *matrix.Dense) {
	tb.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		tb.Fatalf("shape %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	for i := range want {
		for j := range want[i] {
			if got := MustAt(tb, m, i, j); got != want[i][j] {
				tb.Fatalf("[%d,%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

// CompareApprox asserts m and want agree within tol cell by cell.
func CompareApprox(tb testing.TB, want, m *matrix.Dense, tol float64) {
	tb.Helper()
	if m.Rows() != want.Rows() || m.Cols() != want.Cols() {
		tb.Fatalf("shape %dx%d, want %dx%d", m.Rows(), m.Cols(), want.Rows(), want.Cols())
	}
	var got, exp float64
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			got, exp = MustAt(tb, m, i, j), MustAt(tb, want, i, j)
			if math.Abs(got-exp) > tol {
				tb.Fatalf("[%d,%d] = %v, want %v (tol %g)", i, j, got, exp, tol)
			}
		}
	}
}

// tridiagonal3 is the well-conditioned 3×3 fixture [[4,1,0],[1,4,1],[0,1,4]].
func tridiagonal3(tb testing.TB) *matrix.Dense {
	return MustFromRows(tb, [][]float64{
		{4, 1, 0},
		{1, 4, 1},
		{0, 1, 4},
	})
}
