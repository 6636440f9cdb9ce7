// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/SwapRows return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the numeric policy (rejection of NaN/Inf on Set and ingestion).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SwapRows: O(c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps messages stable ("Dense.<method>(row,col): ...") and preserves the
// sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is exclusively owned by whoever holds it: every kernel in this
// package allocates a fresh result and never aliases its inputs.
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix.
// Complexity: O(n²).
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// NewFromRows builds a Dense from a slice of equally long rows.
// Implementation:
//   - Stage 1: validate at least one non-empty row.
//   - Stage 2: validate every row has len(rows[0]) cells; else ErrDimensionMismatch.
//   - Stage 3: copy cells (input is never retained), rejecting NaN/±Inf.
//
// Behavior highlights:
//   - Rectangular input is accepted; squareness is checked by the kernels that need it.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (wrapped with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c { // ragged input
			return nil, fmt.Errorf("NewFromRows: row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("NewFromRows: %w", err)
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Size returns the order of a square matrix (row count).
// For rectangular matrices it still returns Rows; use IsSquare to check.
func (m *Dense) Size() int { return m.r }

// IsSquare reports whether Rows == Cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row and column index.
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange, ErrNaNInf (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	// Numeric policy: finite values only.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// SwapRows exchanges rows i and j in place.
// Used by the LUP factorization on its private working copy.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil // nothing to do
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RowsCopy returns the contents as freshly allocated rows.
// The result does not alias the matrix storage.
// Complexity: O(r*c).
func (m *Dense) RowsCopy() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders the matrix for display (3 decimals, tab-separated).
// See FormatDisplay.
func (m *Dense) String() string {
	return FormatDisplay(m)
}
