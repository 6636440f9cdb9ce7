// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// DecomposeLUP factors a square matrix as P·A = L·U using Gaussian
// elimination with partial pivoting.
//
// Implementation:
//   - Stage 1 (Validate): A must be non-nil and square.
//   - Stage 2 (Execute): on a private copy, for each column k pick the row ≥ k
//     with the largest |entry|; if that magnitude is below PivotTolerance the
//     matrix is singular; otherwise swap it into row k (recording the swap in P)
//     and eliminate below the pivot, storing multipliers in place.
//   - Stage 3 (Finalize): split the combined buffer into unit-lower L and upper U.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular (wrapped with the failing column and its best pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func DecomposeLUP(a *Dense, opts ...Option) (*LUP, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	o := gatherOptions(opts...)

	lup, err := decomposeLUP(a, o.pivotTolerance)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}

	return lup, nil
}

// decomposeLUP is the unvalidated kernel behind DecomposeLUP and InvertLUP.
func decomposeLUP(a *Dense, pivotTol float64) (*LUP, error) {
	n := a.r
	w := a.Clone() // combined L\U working buffer; a stays untouched

	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	var (
		i, j, k, piv int
		mag, pivot   float64
		l            float64
		rowI, rowK   int // flat row offsets
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: best candidate in column k among rows k..n-1.
		piv, mag = w.maxAbsInColumn(k, k)
		if piv < 0 || mag < pivotTol {
			return nil, fmt.Errorf("column %d: best pivot %g: %w", k, mag, ErrSingular)
		}
		if piv != k {
			p[k], p[piv] = p[piv], p[k]
			if err := w.SwapRows(k, piv); err != nil {
				return nil, err
			}
		}

		// Eliminate below the pivot; multipliers overwrite the eliminated cells.
		rowK = k * n
		pivot = w.data[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			w.data[rowI+k] /= pivot
			l = w.data[rowI+k]
			for j = k + 1; j < n; j++ {
				w.data[rowI+j] -= l * w.data[rowK+j]
			}
		}
	}

	L, err := NewSquare(n)
	if err != nil {
		return nil, err
	}
	U, err := NewSquare(n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i > j:
				L.data[i*n+j] = w.data[i*n+j]
			case i == j:
				L.data[i*n+j] = 1.0
				U.data[i*n+j] = w.data[i*n+j]
			default:
				U.data[i*n+j] = w.data[i*n+j]
			}
		}
	}

	return &LUP{L: L, U: U, P: p}, nil
}

// Solve returns x with A·x = b, where P·A = L·U is this factorization.
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: O(n²).
func (f *LUP) Solve(b []float64) ([]float64, error) {
	n := f.L.r
	if len(b) != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("len(b)=%d, want %d: %w", len(b), n, ErrDimensionMismatch))
	}
	y := make([]float64, n)
	x := make([]float64, n)
	forwardSubstitution(f.L, f.P, b, y, nil)
	backSubstitution(f.U, y, x, nil)

	return x, nil
}

// forwardSubstitution solves L·y = P·b honoring the permutation:
// y[i] = b[P[i]] − Σ_{j<i} L[i,j]·y[j]. Each subtract-multiply pair adds 2 to *ops.
// ops may be nil.
func forwardSubstitution(L *Dense, p Permutation, b, y []float64, ops *int64) {
	n := L.r
	var i, j int
	for i = 0; i < n; i++ {
		y[i] = b[p[i]]
		for j = 0; j < i; j++ {
			y[i] -= L.data[i*n+j] * y[j]
			if ops != nil {
				*ops += 2
			}
		}
	}
}

// backSubstitution solves U·x = y: x[i] = (y[i] − Σ_{j>i} U[i,j]·x[j]) / U[i,i].
// Each division adds 1 to *ops. ops may be nil.
func backSubstitution(U *Dense, y, x []float64, ops *int64) {
	n := U.r
	var i, j int
	for i = n - 1; i >= 0; i-- {
		x[i] = y[i]
		for j = i + 1; j < n; j++ {
			x[i] -= U.data[i*n+j] * x[j]
		}
		x[i] /= U.data[i*n+i]
		if ops != nil {
			*ops++
		}
	}
}

// InvertLUP computes A⁻¹ from the LUP factorization, one column per basis vector.
//
// Implementation:
//   - Stage 1 (Validate): A must be non-nil and square.
//   - Stage 2 (Decompose): P·A = L·U; log L, U (4 decimals) and P.
//   - Stage 3 (Execute): for i = 0..n-1 solve L·y = P·e_i, then U·x = y;
//     x becomes column i of the inverse.
//   - Stage 4 (Finalize): log the inverse, elapsed time and operation count.
//
// Behavior highlights:
//   - The timer starts before the factorization and stops right after the
//     last substitution.
//   - Operation counter: +2 per forward subtract-multiply pair, +1 per
//     back-substitution division; elimination itself is not counted.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular. No partial inverse is returned.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func InvertLUP(a *Dense, opts ...Option) (*Report, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInvertLUP, err)
	}
	o := gatherOptions(opts...)
	n := a.r

	rec := &recorder{}
	rec.startClock()

	lup, err := decomposeLUP(a, o.pivotTolerance)
	if err != nil {
		return nil, matrixErrorf(opInvertLUP, err)
	}
	rec.matrix("\nL matrix:\n", lup.L)
	rec.matrix("\nU matrix:\n", lup.U)
	rec.printf("\nP vector: %s", lup.P)

	inv, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opInvertLUP, err)
	}
	var (
		e = make([]float64, n) // basis vector e_i
		y = make([]float64, n) // forward-substitution scratch
		x = make([]float64, n) // back-substitution result
	)
	for i := 0; i < n; i++ {
		clear(e)
		e[i] = 1.0
		forwardSubstitution(lup.L, lup.P, e, y, &rec.ops)
		backSubstitution(lup.U, y, x, &rec.ops)
		for j := 0; j < n; j++ {
			inv.data[j*n+i] = x[j] // column i
		}
	}
	rec.stopClock()

	rec.matrix("\nInverted matrix:\n", inv)
	rec.timing()

	return rec.report(MethodLUP, inv, 0), nil
}
