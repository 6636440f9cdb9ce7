// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the inversion kernels.
// This file contains ONLY domain-facing types (method selector, permutation,
// factorization bundle, inversion report). Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import (
	"strconv"
	"strings"
	"time"
)

// Method selects an inversion algorithm.
type Method int

const (
	// MethodSchulz is Newton–Schulz iterative refinement (InvertSchulz).
	MethodSchulz Method = iota

	// MethodLUP is LUP factorization plus forward/back substitution (InvertLUP).
	MethodLUP
)

// String returns the display name used in report headers ("Schulz", "LUP").
func (m Method) String() string {
	switch m {
	case MethodSchulz:
		return "Schulz"
	case MethodLUP:
		return "LUP"
	default:
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMethod maps a case-insensitive name ("schulz", "lup") to a Method.
// Errors: ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "schulz":
		return MethodSchulz, nil
	case "lup", "lu":
		return MethodLUP, nil
	default:
		return 0, matrixErrorf("ParseMethod("+strconv.Quote(s)+")", ErrUnknownMethod)
	}
}

// Permutation records partial pivoting: P[i] is the original row index that
// occupies position i after all swaps. It is a bijection on {0..n-1}.
type Permutation []int

// String renders the vector as "p0, p1, ..." (the log layout).
func (p Permutation) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}

// LUP is the factorization P·A = L·U of a square matrix.
//   - L is unit lower-triangular (diagonal exactly 1).
//   - U is upper-triangular (entries below the diagonal exactly 0).
//   - P is the row permutation produced by partial pivoting.
type LUP struct {
	L *Dense
	U *Dense
	P Permutation
}

// Report bundles the outcome of one successful inversion call.
// It is created once per call and never mutated afterwards.
type Report struct {
	Method     Method        // algorithm that produced Inverse
	Inverse    *Dense        // the inverted matrix (owned by the caller)
	Log        string        // human-readable trace of intermediate states
	Elapsed    time.Duration // wall-clock time of the compute loop
	Ops        int64         // scalar multiply/divide counter (diagnostic only)
	Iterations int           // Schulz iterations performed; 0 for LUP
}

// ElapsedMillis reports Elapsed as fractional milliseconds.
func (r *Report) ElapsedMillis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}
