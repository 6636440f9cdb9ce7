// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matinv/matrix"
)

// toMat copies a Dense into a gonum *mat.Dense.
func toMat(m *matrix.Dense) *mat.Dense {
	flat := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range m.RowsCopy() {
		flat = append(flat, row...)
	}

	return mat.NewDense(m.Rows(), m.Cols(), flat)
}

// TestOracle_GonumInverseAndDet cross-checks both inverters and both
// determinants against gonum's LAPACK-backed implementations.
func TestOracle_GonumInverseAndDet(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 7, 10} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := DiagonallyDominant(t, n, int64(1000+n))
			ref := toMat(a)

			var want mat.Dense
			require.NoError(t, want.Inverse(ref))

			for _, method := range []matrix.Method{matrix.MethodSchulz, matrix.MethodLUP} {
				rep, err := matrix.Invert(a, method)
				require.NoError(t, err)
				require.True(t, mat.EqualApprox(&want, toMat(rep.Inverse), 1e-8), "%s disagrees with gonum", method)
			}

			wantDet := mat.Det(ref)
			got, err := matrix.DeterminantLU(a)
			require.NoError(t, err)
			require.InDelta(t, wantDet, got, 1e-9*math.Abs(wantDet))
			if n <= 7 { // cofactor expansion is factorial
				got, err = matrix.Determinant(a)
				require.NoError(t, err)
				require.InDelta(t, wantDet, got, 1e-9*math.Abs(wantDet))
			}
		})
	}
}
