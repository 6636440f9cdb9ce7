// SPDX-License-Identifier: MIT
// Package matrix provides the dense primitives shared by both inverters:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, Frobenius norm and identity construction. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - One canonical kernel per primitive; every kernel allocates a fresh result.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Inputs are never mutated; results never alias inputs.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opNorm        = "FrobeniusNorm"
	opIdentity    = "Identity"
	opRound       = "Round"
	opEqual       = "EqualApprox"
	opDeterminant = "Determinant"
	opDetLU       = "DeterminantLU"
	opSchulz      = "InvertSchulz"
	opLUP         = "DecomposeLUP"
	opInvertLUP   = "InvertLUP"
	opSolve       = "LUP.Solve"
	opInvert      = "Invert"
	opRandom      = "Random"
	opParse       = "Parse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: single flat loop 0..r*c-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for k := range res.data {
		res.data[k] = a.data[k] + sign*b.data[k]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate result.
//   - Stage 2: naive triple loop in i→k→j order over flat slices; each
//     C[i,j] accumulates Σ_k A[i,k]·B[k,j].
//
// Behavior highlights:
//   - Deterministic accumulation order; an exact identity operand reproduces
//     the other operand bit-for-bit.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int // loop iterators
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 float64
	)
	// row-major multiplication into res.data
	// a.data layout: i*aCols + k
	// b.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped: T[j,i] = A[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	floats.Scale(alpha, res.data)

	return res, nil
}

// FrobeniusNorm returns sqrt(Σ a[i,j]²) over all entries.
// The flat buffer is handed to floats.Norm, which scales intermediate sums
// so that large entries do not overflow.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FrobeniusNorm(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return NormZero, matrixErrorf(opNorm, err)
	}

	return floats.Norm(m.data, 2), nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions for n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	res, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		res.data[i*n+i] = 1.0
	}

	return res, nil
}

// EqualApprox reports whether a and b have the same shape and every pair of
// entries is within tol (absolute or relative), per floats.EqualApprox.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func EqualApprox(a, b *Dense, tol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}

	return floats.EqualApprox(a.data, b.data, tol), nil
}

// Round returns a copy with every entry rounded half away from zero to the
// given number of decimals (decimals >= 0).
// Errors: ErrNilMatrix, ErrBadRange for negative decimals.
// Complexity: O(r*c).
func Round(m *Dense, decimals int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRound, err)
	}
	if decimals < 0 {
		return nil, matrixErrorf(opRound, ErrBadRange)
	}
	res := m.Clone()
	for k, v := range res.data {
		res.data[k] = scalar.Round(v, decimals)
	}

	return res, nil
}

// maxAbsInColumn scans rows [from, r) of column col and returns the row holding
// the largest |entry| together with that magnitude. Ties keep the first row.
// Returns (-1, 0) when every candidate is exactly zero.
func (m *Dense) maxAbsInColumn(col, from int) (row int, mag float64) {
	row = -1
	for i := from; i < m.r; i++ {
		if v := math.Abs(m.data[i*m.c+col]); v > mag {
			mag, row = v, i
		}
	}

	return row, mag
}
