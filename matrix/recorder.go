// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// recorder accumulates the diagnostics of a single inversion call: the
// textual trace, the operation counter and the wall-clock duration of the
// compute loop. One recorder per call; never shared.
type recorder struct {
	log     strings.Builder
	ops     int64
	start   time.Time
	elapsed time.Duration
}

// startClock marks the beginning of the timed window.
func (r *recorder) startClock() { r.start = time.Now() }

// stopClock closes the timed window.
func (r *recorder) stopClock() { r.elapsed = time.Since(r.start) }

// addOps bumps the operation counter.
func (r *recorder) addOps(n int64) { r.ops += n }

// printf appends formatted text to the trace.
func (r *recorder) printf(format string, args ...any) {
	fmt.Fprintf(&r.log, format, args...)
}

// matrix appends a header line followed by m at log precision.
func (r *recorder) matrix(header string, m *Dense) {
	r.log.WriteString(header)
	r.log.WriteString(FormatLog(m))
}

// timing appends the elapsed-time and operation-count lines.
func (r *recorder) timing() {
	r.printf("\nTime elapsed: %s ms", formatMillis(r.elapsed))
	r.printf("\nOperation count: %d", r.ops)
}

// report freezes the collected diagnostics into a Report.
func (r *recorder) report(method Method, inv *Dense, iterations int) *Report {
	return &Report{
		Method:     method,
		Inverse:    inv,
		Log:        r.log.String(),
		Elapsed:    r.elapsed,
		Ops:        r.ops,
		Iterations: iterations,
	}
}

// formatMillis renders d as fractional milliseconds with the shortest exact digits.
func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', -1, 64)
}
