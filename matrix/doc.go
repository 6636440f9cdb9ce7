// Package matrix inverts small-to-moderate dense real matrices and reports
// how the inversion went.
//
// The matrix package provides:
//
//   - Dense, a row-major square-or-rectangular float64 buffer with
//     bounds-checked accessors and a finite-values numeric policy.
//   - Primitives (Add, Sub, Mul, Transpose, Scale, FrobeniusNorm, Identity)
//     that always return a freshly allocated result and never mutate inputs.
//   - Determinant (recursive cofactor expansion, O(n!)) and DeterminantLU
//     (partial-pivoted elimination, O(n³)), plus the IsInvertible pre-check.
//   - InvertSchulz: Newton–Schulz refinement X ← X + X·(I − A·X) from
//     X0 = Aᵀ/(‖A‖_F·‖Aᵀ‖_F), up to 100 iterations with tolerance 1e-10.
//   - DecomposeLUP and InvertLUP: P·A = L·U with partial pivoting, then one
//     forward/back substitution per basis vector.
//   - Format/Parse helpers for the tab-separated text layout (4 decimals in
//     logs, 3 decimals for display) and Random for test data.
//
// Each inverter returns a *Report carrying the inverse, a textual trace of
// intermediate states, the elapsed wall-clock time of the compute loop and a
// diagnostic operation counter. Failures are call-scoped and never return a
// partial inverse:
//
//	ErrNonSquare     – input is not square (also from Determinant).
//	ErrNotConverged  – Schulz spent its iteration budget (*ConvergenceError).
//	ErrSingular      – LUP found a column whose best pivot is below 1e-10.
//
// All kernels are synchronous and keep no shared state, so separate matrices
// may be inverted concurrently without locking.
//
// Example:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	rep, err := matrix.InvertLUP(a)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(matrix.FormatDisplay(rep.Inverse))
package matrix
