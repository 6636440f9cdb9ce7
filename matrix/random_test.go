// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matinv/matrix"
)

func TestRandom_RangeAndIntegers(t *testing.T) {
	t.Parallel()

	m, err := matrix.Random(rand.New(rand.NewSource(1)), 12, matrix.DefaultRandomMin, matrix.DefaultRandomMax)
	require.NoError(t, err)
	require.Equal(t, 12, m.Size())
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			v := MustAt(t, m, i, j)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 10.0)
			require.Equal(t, math.Trunc(v), v)
		}
	}
}

func TestRandom_SeededIsReproducible(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random(rand.New(rand.NewSource(42)), 4, -5, 5)
	require.NoError(t, err)
	b, err := matrix.Random(rand.New(rand.NewSource(42)), 4, -5, 5)
	require.NoError(t, err)
	CompareApprox(t, a, b, 0)
}

func TestRandom_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Random(nil, 3, 5, 5)
	require.ErrorIs(t, err, matrix.ErrBadRange)
	_, err = matrix.Random(nil, 0, 0, 10)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Random(nil, 2, math.MinInt, math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrBadRange)
	_, err = matrix.Random(nil, 2, -1, math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrBadRange)

	m, err := matrix.Random(nil, 2, 0, 1) // time-seeded, single value
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, m)
}
