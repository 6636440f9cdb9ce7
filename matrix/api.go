// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical kernel; no logic is duplicated.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// Invert dispatches to InvertSchulz or InvertLUP according to method.
// Options are forwarded unchanged; each kernel reads the ones it understands.
// Errors: ErrUnknownMethod plus the errors of the selected kernel.
func Invert(a *Dense, method Method, opts ...Option) (*Report, error) {
	switch method {
	case MethodSchulz:
		return InvertSchulz(a, opts...)
	case MethodLUP:
		return InvertLUP(a, opts...)
	default:
		return nil, matrixErrorf(opInvert, ErrUnknownMethod)
	}
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c).
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n²).
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return Identity(m.r)
}

// Residual returns ‖A·X − I‖_F, the quality measure of a candidate inverse X.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(n³).
func Residual(a, x *Dense) (float64, error) {
	ident, err := IdentityLike(a)
	if err != nil {
		return 0, err
	}
	ax, err := Mul(a, x)
	if err != nil {
		return 0, err
	}
	d, err := Sub(ax, ident)
	if err != nil {
		return 0, err
	}

	return FrobeniusNorm(d)
}
