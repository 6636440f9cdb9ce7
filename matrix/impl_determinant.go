// SPDX-License-Identifier: MIT

package matrix

import "math"

// Determinant returns det(m) by recursive cofactor expansion along the first row.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: n=1 → a00; n=2 → a00·a11 − a01·a10;
//     n>2 → Σ_p a0p·(−1)^p·det(minor(0,p)).
//
// Behavior highlights:
//   - Exact reproduction of the textbook expansion, including its rounding.
//   - Minors are fresh flat buffers; m is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Determinant").
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. Intended for the small
//     orders accepted by ValidateBounds; use DeterminantLU for larger inputs.
func Determinant(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	// One minor buffer per order: the expansion is depth-first, so a level
	// never overwrites a buffer its caller still reads.
	scratch := make([][]float64, m.r)
	for k := 1; k < m.r; k++ {
		scratch[k] = make([]float64, k*k)
	}

	return cofactorDet(m.data, m.r, scratch), nil
}

// cofactorDet expands a flat n×n buffer along row 0.
// scratch[k] holds a k×k buffer for every k < n.
func cofactorDet(a []float64, n int, scratch [][]float64) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	var (
		det   = ZeroSum
		sign  = 1.0
		minor = scratch[n-1] // reused across columns p
		p     int
	)
	for p = 0; p < n; p++ {
		fillMinor(minor, a, n, p)
		det += a[p] * sign * cofactorDet(minor, n-1, scratch)
		sign = -sign // (−1)^p
	}

	return det
}

// fillMinor writes into dst the (n-1)×(n-1) minor of a that excludes row 0 and column p.
func fillMinor(dst, a []float64, n, p int) {
	var i, j, k int
	for i = 1; i < n; i++ {
		for j = 0; j < n; j++ {
			if j == p {
				continue
			}
			dst[k] = a[i*n+j]
			k++
		}
	}
}

// DeterminantLU returns det(m) from a partial-pivoted Gaussian elimination on
// a private copy: the product of the pivots, negated once per row swap.
// A column whose candidates are all exactly zero yields 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "DeterminantLU"), same as Determinant.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func DeterminantLU(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDetLU, err)
	}
	n := m.r
	w := m.Clone() // working copy; eliminated in place

	det := 1.0
	var i, j, k, piv int
	var pivot, factor float64
	var rowK, rowP []float64
	for k = 0; k < n; k++ {
		piv, _ = w.maxAbsInColumn(k, k)
		if piv < 0 {
			return 0, nil // whole column below the diagonal is zero
		}
		if piv != k {
			rowK, rowP = w.data[k*n:(k+1)*n], w.data[piv*n:(piv+1)*n]
			for j = range rowK {
				rowK[j], rowP[j] = rowP[j], rowK[j]
			}
			det = -det
		}
		pivot = w.data[k*n+k]
		det *= pivot
		for i = k + 1; i < n; i++ {
			factor = w.data[i*n+k] / pivot
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w.data[i*n+j] -= factor * w.data[k*n+j]
			}
		}
	}

	return det, nil
}

// IsInvertible is the determinant pre-check used before inversion:
// it reports |Determinant(m)| ≥ eps. Pass DefaultSingularThreshold for the
// classic 1e-10 cut-off.
// Errors: same as Determinant.
func IsInvertible(m *Dense, eps float64) (bool, error) {
	det, err := Determinant(m)
	if err != nil {
		return false, err
	}

	return math.Abs(det) >= eps, nil
}
