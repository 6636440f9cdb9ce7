// Package matinv inverts small dense real matrices with two classic methods
// and explains what each one did along the way.
//
// What is inside?
//
//   - Newton–Schulz refinement: X ← X + X·(I − A·X), started from
//     X0 = Aᵀ/(‖A‖_F·‖Aᵀ‖_F) and stopped once successive iterates differ by
//     less than 1e-10 (Frobenius norm), or after 100 iterations.
//   - LUP decomposition with partial pivoting followed by one forward/back
//     substitution per column of the identity.
//   - Diagnostics for every run: a textual log of intermediate matrices, the
//     elapsed time of the compute loop and an operation counter.
//   - Cofactor and pivoted-elimination determinants, random test matrices,
//     and a plain-text result file (original, inverse, method log).
//
// Under the hood the module is organized as:
//
//	matrix/      Dense storage, primitives, determinants, both inverters
//	report/      the "Original / Inverted / Method Log" result file
//	cmd/matinv/  cobra CLI: invert, compare, det, generate
//	examples/    runnable programs (Hilbert conditioning, circuit solve)
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	rep, _ := matrix.InvertLUP(a)
//	fmt.Print(matrix.FormatDisplay(rep.Inverse)) // 0.600 -0.700 / -0.200 0.400
//
//	go install github.com/katalvlaran/matinv/cmd/matinv@latest
package matinv
