// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// InvertSchulz computes A⁻¹ by Newton–Schulz iterative refinement.
//
// Implementation:
//   - Stage 1 (Validate): A must be non-nil and square.
//   - Stage 2 (Prepare): X0 = α·Aᵀ with α = 1/(‖A‖_F·‖Aᵀ‖_F); log X0.
//     A zero, subnormal or non-finite α (zero matrix, entries near the float64
//     range limits) fails at once with a *ConvergenceError of 0 iterations.
//   - Stage 3 (Execute): up to MaxIterations times:
//     R = I − A·X; X_next = X + X·R; log X_next;
//     stop once ‖X_next − X‖_F < Tolerance.
//   - Stage 4 (Finalize): append the summary lines and freeze the Report.
//
// Behavior highlights:
//   - The timer wraps only the iteration loop (X0 construction is outside).
//   - Every iteration, including the converging one, is logged at 4 decimals.
//   - Operation counter: 2·n³ per iteration (two n×n products of n³
//     multiply-adds each); X0 construction is not counted.
//   - Deterministic: identical input yields an identical Report (except Elapsed).
//
// Inputs:
//   - a: square matrix (not mutated).
//   - opts: WithMaxIterations, WithTolerance.
//
// Returns:
//   - *Report with Method=MethodSchulz, Iterations = iterations performed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - *ConvergenceError (errors.Is ErrNotConverged) once the budget is spent;
//     the trace is attached and no partial inverse is returned.
//
// Complexity:
//   - Time O(k·n³) for k iterations, Space O(n²).
func InvertSchulz(a *Dense, opts ...Option) (*Report, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSchulz, err)
	}
	o := gatherOptions(opts...)
	n := int64(a.r)

	ident, err := Identity(a.r)
	if err != nil {
		return nil, matrixErrorf(opSchulz, err)
	}
	alpha, err := scaleFactor(a)
	if err != nil {
		return nil, matrixErrorf(opSchulz, err)
	}

	rec := &recorder{}
	if degenerateScale(alpha) {
		rec.printf("Initial approximation (X0): degenerate scale factor %g", alpha)
		rec.printf("\nMethod did not converge.")
		return nil, matrixErrorf(opSchulz, &ConvergenceError{
			Delta: math.Inf(1),
			Log:   rec.log.String(),
		})
	}
	x, err := initialApproximation(a, alpha)
	if err != nil {
		return nil, matrixErrorf(opSchulz, err)
	}
	rec.matrix("Initial approximation (X0):\n", x)

	var (
		next       *Dense
		delta      float64
		iterations int
		converged  bool
	)
	rec.startClock()
	for iterations < o.maxIterations {
		next, delta, err = schulzStep(a, x, ident)
		if err != nil {
			return nil, matrixErrorf(opSchulz, err)
		}
		iterations++
		rec.addOps(2 * n * n * n)
		rec.matrix(fmt.Sprintf("\nIteration %d (X%d):\n", iterations, iterations), next)
		x = next
		if delta < o.tolerance {
			converged = true
			break
		}
	}
	rec.stopClock()

	if !converged {
		rec.printf("\nMethod did not converge.")
		return nil, matrixErrorf(opSchulz, &ConvergenceError{
			Iterations: iterations,
			Delta:      delta,
			Log:        rec.log.String(),
		})
	}

	rec.printf("\nMethod converged successfully.")
	rec.printf("\nIterations: %d", iterations)
	rec.timing()

	return rec.report(MethodSchulz, x, iterations), nil
}

// scaleFactor returns α = 1/(‖A‖_F·‖Aᵀ‖_F), dividing twice so that the
// norm product never overflows.
func scaleFactor(a *Dense) (float64, error) {
	at, err := Transpose(a)
	if err != nil {
		return 0, err
	}
	normA, err := FrobeniusNorm(a)
	if err != nil {
		return 0, err
	}
	normAt, err := FrobeniusNorm(at)
	if err != nil {
		return 0, err
	}

	return 1.0 / normA / normAt, nil
}

// degenerateScale reports an α that cannot seed the iteration: zero,
// subnormal (too few significant bits) or non-finite (zero matrix).
func degenerateScale(alpha float64) bool {
	return isNonFinite(alpha) || alpha < minNormalFloat64
}

// minNormalFloat64 is the smallest positive normal float64, 2^-1022.
const minNormalFloat64 = 0x1p-1022

// initialApproximation returns X0 = α·Aᵀ.
func initialApproximation(a *Dense, alpha float64) (*Dense, error) {
	at, err := Transpose(a)
	if err != nil {
		return nil, err
	}

	return Scale(at, alpha)
}

// schulzStep performs one refinement X_next = X + X·(I − A·X) and returns
// X_next together with ‖X_next − X‖_F.
func schulzStep(a, x, ident *Dense) (*Dense, float64, error) {
	ax, err := Mul(a, x)
	if err != nil {
		return nil, 0, err
	}
	r, err := Sub(ident, ax) // residual
	if err != nil {
		return nil, 0, err
	}
	xr, err := Mul(x, r)
	if err != nil {
		return nil, 0, err
	}
	next, err := Add(x, xr)
	if err != nil {
		return nil, 0, err
	}
	diff, err := Sub(next, x)
	if err != nil {
		return nil, 0, err
	}
	delta, err := FrobeniusNorm(diff)
	if err != nil {
		return nil, 0, err
	}

	return next, delta, nil
}
