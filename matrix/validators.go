// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/bounds checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// Input bounds accepted by the interactive front-ends.
// The kernels themselves place no ceiling on size or magnitude.
const (
	// DefaultMaxSize is the largest accepted matrix order.
	DefaultMaxSize = 12

	// DefaultMaxAbs is the largest accepted entry magnitude.
	DefaultMaxAbs = 5000.0
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.r, m.c), ErrNonSquare)
	}

	return nil
}

// ValidateSameShape composes NotNil(a) → NotNil(b) → equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape(%dx%d, %dx%d)", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for a×b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible(%dx%d, %dx%d)", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBounds checks the input contract of the interactive front-ends:
// m is square, 1 ≤ order ≤ maxSize, and every |entry| ≤ maxAbs.
//
// Inputs:
//   - maxSize: largest accepted order (DefaultMaxSize for the classic limits).
//   - maxAbs: largest accepted magnitude (DefaultMaxAbs).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSizeLimit, ErrValueLimit.
//
// Complexity:
//   - Time O(n²), Space O(1).
func ValidateBounds(m *Dense, maxSize int, maxAbs float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.r > maxSize {
		return validatorErrorf(fmt.Sprintf("ValidateBounds: size %d > %d", m.r, maxSize), ErrSizeLimit)
	}
	for idx, v := range m.data {
		if math.Abs(v) > maxAbs {
			return validatorErrorf(fmt.Sprintf("ValidateBounds: |a[%d,%d]| = %g > %g", idx/m.c, idx%m.c, math.Abs(v), maxAbs), ErrValueLimit)
		}
	}

	return nil
}
