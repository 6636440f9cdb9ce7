// SPDX-License-Identifier: MIT

// Package report writes the plain-text result file of an inversion:
//
//	Original Matrix:
//	<original, 3 decimals, tab-separated>
//
//	Inverted Matrix:
//	<inverse rounded to 3 decimals>
//
//	<Method> Method Log:
//	<full algorithm trace>
//
// The layout has no versioning; it is meant to be read by people and diffed.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/matinv/matrix"
)

// ErrNilReport indicates a missing inversion report.
var ErrNilReport = errors.New("report: nil inversion report")

// Section headers of the result file.
const (
	HeaderOriginal = "Original Matrix:"
	HeaderInverted = "Inverted Matrix:"
	logHeaderFmt   = "%s Method Log:"
)

// LogHeader returns the log section header for a method, e.g. "LUP Method Log:".
func LogHeader(m matrix.Method) string {
	return fmt.Sprintf(logHeaderFmt, m)
}

// Write renders original and rep into w.
//
// Errors:
//   - matrix.ErrNilMatrix when original or the inverse is nil, ErrNilReport
//     when rep is nil, or the writer's error.
func Write(w io.Writer, original *matrix.Dense, rep *matrix.Report) error {
	if rep == nil {
		return ErrNilReport
	}
	if err := matrix.ValidateNotNil(original); err != nil {
		return fmt.Errorf("report: original: %w", err)
	}
	rounded, err := matrix.Round(rep.Inverse, matrix.DisplayDecimals)
	if err != nil {
		return fmt.Errorf("report: inverse: %w", err)
	}

	bw := bufio.NewWriter(w)
	writeLine(bw, HeaderOriginal)
	writeLine(bw, matrix.FormatDisplay(original))
	writeLine(bw, "\n"+HeaderInverted)
	writeLine(bw, matrix.FormatDisplay(rounded))
	writeLine(bw, "\n"+LogHeader(rep.Method))
	writeLine(bw, rep.Log)

	return bw.Flush()
}

// Render is Write into a string.
func Render(original *matrix.Dense, rep *matrix.Report) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, original, rep); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Save writes the result file to path, replacing any existing file.
func Save(path string, original *matrix.Dense, rep *matrix.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: %w", cerr)
		}
	}()

	return Write(f, original, rep)
}

// writeLine writes s followed by a newline; errors surface on Flush.
func writeLine(w *bufio.Writer, s string) {
	_, _ = w.WriteString(s)
	_ = w.WriteByte('\n')
}
