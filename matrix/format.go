// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fixed precisions of the two textual renderings.
const (
	// LogDecimals is the precision of matrices written into inversion logs.
	LogDecimals = 4

	// DisplayDecimals is the precision of user-facing renderings and reports.
	DisplayDecimals = 3
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep = "\t"
	_fmtRowEnd  = "\n"
)

// Format renders m with a fixed number of decimals: every cell is followed by
// a tab and every row by a newline. Negative zero prints as zero.
// A nil matrix renders as the empty string.
// Complexity: O(r*c).
func Format(m *Dense, decimals int) string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		for j = 0; j < m.c; j++ { // iterate over columns
			sb.WriteString(formatCell(m.data[i*m.c+j], decimals))
			sb.WriteString(_fmtCellSep)
		}
		sb.WriteString(_fmtRowEnd)
	}

	return sb.String()
}

// FormatLog renders m at log precision (4 decimals).
func FormatLog(m *Dense) string { return Format(m, LogDecimals) }

// FormatDisplay renders m at display precision (3 decimals).
func FormatDisplay(m *Dense) string { return Format(m, DisplayDecimals) }

// formatCell formats one value with fixed precision, dropping the sign of a
// value that rounds to zero ("-0.000" → "0.000").
func formatCell(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}

	return s
}

// Parse reads a matrix written one row per line with cells separated by tabs
// or spaces (the layout produced by Format). Blank lines are skipped.
//
// Implementation:
//   - Stage 1: scan lines; split on whitespace; parse each cell as float64.
//   - Stage 2: build through NewFromRows (rectangularity and numeric policy).
//
// Errors:
//   - ErrParse (with line/column), ErrDimensionMismatch for ragged rows,
//     ErrInvalidDimensions for empty input, ErrNaNInf for non-finite cells,
//     or the underlying reader error.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Parse(r io.Reader) (*Dense, error) {
	var (
		rows [][]float64
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank separator line
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, matrixErrorf(opParse, fmt.Errorf("line %d, cell %d: %q: %w", line, j+1, f, ErrParse))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	m, err := NewFromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return m, nil
}
