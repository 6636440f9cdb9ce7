// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matinv/matrix"
)

func TestFormat_Layout(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0.125}})
	require.Equal(t, "1.0000\t2.5000\t\n-3.0000\t0.1250\t\n", matrix.FormatLog(m))
	require.Equal(t, "1.000\t2.500\t\n-3.000\t0.125\t\n", matrix.FormatDisplay(m))
	require.Equal(t, "1\t2\t\n-3\t0\t\n", matrix.Format(m, 0))
	require.Empty(t, matrix.Format(nil, 3))
}

func TestFormat_NegativeZero(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{-0.00001, -0.25}})
	require.Equal(t, "0.000\t-0.250\t\n", matrix.FormatDisplay(m))
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	orig := RandomDense(t, 6, 99)
	back, err := matrix.Parse(strings.NewReader(matrix.FormatDisplay(orig)))
	require.NoError(t, err)
	CompareApprox(t, orig, back, 0.0005)
}

func TestParse_SpacesAndBlankLines(t *testing.T) {
	t.Parallel()

	m, err := matrix.Parse(strings.NewReader("\n 1   2 \n\n3\t4\n\n"))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Parse(strings.NewReader("1 2\n3 x\n"))
	require.ErrorIs(t, err, matrix.ErrParse)
	require.Contains(t, err.Error(), "line 2, cell 2")

	_, err = matrix.Parse(strings.NewReader("1 2\n3\n"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Parse(strings.NewReader("   \n"))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Parse(strings.NewReader("1 NaN\n"))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	boom := errors.New("boom")
	_, err = matrix.Parse(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}
