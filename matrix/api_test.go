// SPDX-License-Identifier: MIT
package matrix_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matinv/matrix"
)

func TestInvert_Dispatch(t *testing.T) {
	t.Parallel()

	a := tridiagonal3(t)
	for _, m := range []matrix.Method{matrix.MethodSchulz, matrix.MethodLUP} {
		rep, err := matrix.Invert(a, m)
		require.NoError(t, err)
		require.Equal(t, m, rep.Method)
		r, err := matrix.Residual(a, rep.Inverse)
		require.NoError(t, err)
		require.Less(t, r, tolIdentity)
	}

	_, err := matrix.Invert(a, matrix.Method(42))
	require.ErrorIs(t, err, matrix.ErrUnknownMethod)
}

func TestInvert_ConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	inputs := make([]*matrix.Dense, workers)
	for w := range inputs {
		inputs[w] = DiagonallyDominant(t, 5, int64(w))
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			a := inputs[w]
			method := matrix.MethodLUP
			if w%2 == 0 {
				method = matrix.MethodSchulz
			}
			rep, err := matrix.Invert(a, method)
			if err != nil {
				errs[w] = err
				return
			}
			r, err := matrix.Residual(a, rep.Inverse)
			if err == nil && r > tolIdentity {
				err = matrix.ErrNotConverged
			}
			errs[w] = err
		}(w)
	}
	wg.Wait()
	for w, err := range errs {
		require.NoError(t, err, "worker %d", w)
	}
}

func TestZerosLikeIdentityLike(t *testing.T) {
	t.Parallel()

	z, err := matrix.ZerosLike(MustDense(t, 2, 3))
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())

	id, err := matrix.IdentityLike(tridiagonal3(t))
	require.NoError(t, err)
	AssertIdentity(t, id, 0)

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMethod_StringAndParse(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Schulz", matrix.MethodSchulz.String())
	require.Equal(t, "LUP", matrix.MethodLUP.String())
	require.Equal(t, "Method(7)", matrix.Method(7).String())

	for in, want := range map[string]matrix.Method{
		"schulz":  matrix.MethodSchulz,
		" Schulz": matrix.MethodSchulz,
		"LUP":     matrix.MethodLUP,
		"lu":      matrix.MethodLUP,
	} {
		got, err := matrix.ParseMethod(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := matrix.ParseMethod("gauss")
	require.ErrorIs(t, err, matrix.ErrUnknownMethod)
}

func TestReport_ElapsedMillis(t *testing.T) {
	t.Parallel()

	r := &matrix.Report{Elapsed: 1500 * time.Microsecond}
	require.InDelta(t, 1.5, r.ElapsedMillis(), 1e-12)
}

func TestConvergenceError_Message(t *testing.T) {
	t.Parallel()

	err := &matrix.ConvergenceError{Iterations: 100, Delta: 0.5}
	require.ErrorIs(t, err, matrix.ErrNotConverged)
	require.Equal(t, "matrix: method did not converge after 100 iterations (last delta 0.5)", err.Error())
}
