// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for Option constructors
// receiving nonsensical values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with matrixErrorf at the
// facade ("Op: matrix: ..."); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> numeric failure
// (singular / not converged).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/SwapRows) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, parsing).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by the LUP factorization when the best pivot of a
	// column is below the pivot tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotConverged is returned by the Schulz iteration when the iteration
	// budget is exhausted before the tolerance is met. The concrete value is a
	// *ConvergenceError carrying the trace.
	ErrNotConverged = errors.New("matrix: method did not converge")

	// ErrUnknownMethod indicates an unsupported inversion method name or value.
	ErrUnknownMethod = errors.New("matrix: unknown inversion method")

	// ErrParse indicates that a textual matrix cell could not be parsed as a number.
	ErrParse = errors.New("matrix: cannot parse value")

	// ErrBadRange indicates an empty or inverted [lo, hi) range for random generation.
	ErrBadRange = errors.New("matrix: invalid value range")

	// ErrSizeLimit indicates a matrix size outside the accepted input bounds.
	ErrSizeLimit = errors.New("matrix: size outside accepted bounds")

	// ErrValueLimit indicates an entry whose magnitude exceeds the accepted input bounds.
	ErrValueLimit = errors.New("matrix: value outside accepted bounds")
)

// ConvergenceError reports a Schulz run that exhausted its iteration budget.
// It matches ErrNotConverged via errors.Is; use errors.As to read the trace.
type ConvergenceError struct {
	Iterations int     // iterations attempted (equals the configured maximum)
	Delta      float64 // ‖X_next − X‖_F of the last attempted iteration
	Log        string  // full iteration trace, ending with the failure line
}

// Error implements error.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations (last delta %g)", ErrNotConverged.Error(), e.Iterations, e.Delta)
}

// Unwrap exposes the ErrNotConverged sentinel for errors.Is.
func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }
