// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matinv/matrix"
)

// TestDefaultOptions_Documented verifies NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultMaxIterations, o.MaxIterations())
	require.Equal(t, matrix.DefaultTolerance, o.Tolerance())
	require.Equal(t, matrix.DefaultPivotTolerance, o.PivotTolerance())
}

// TestNewOptions_LastWriterWins ensures each Option sets exactly its field.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithMaxIterations(5),
		matrix.WithMaxIterations(7),
		matrix.WithTolerance(1e-3),
		nil, // skipped
		matrix.WithPivotTolerance(0),
	)
	require.Equal(t, 7, o.MaxIterations())
	require.Equal(t, 1e-3, o.Tolerance())
	require.Zero(t, o.PivotTolerance())
}

// TestOptions_PanicOnNonsense checks the constructor guards.
func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithMaxIterations(0) })
	require.Panics(t, func() { matrix.WithMaxIterations(-3) })
	require.Panics(t, func() { matrix.WithTolerance(0) })
	require.Panics(t, func() { matrix.WithTolerance(math.NaN()) })
	require.Panics(t, func() { matrix.WithTolerance(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithPivotTolerance(-1e-12) })
	require.Panics(t, func() { matrix.WithPivotTolerance(math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithPivotTolerance(0) })
}
