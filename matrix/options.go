// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the inversion kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations caps the Schulz refinement loop.
	DefaultMaxIterations = 100

	// DefaultTolerance is the absolute Frobenius-norm threshold on ‖X_next − X‖
	// that ends the Schulz refinement.
	DefaultTolerance = 1e-10

	// DefaultPivotTolerance is the smallest acceptable pivot magnitude in the
	// LUP factorization; smaller best-pivots declare the matrix singular.
	DefaultPivotTolerance = 1e-10

	// DefaultSingularThreshold is the |det| threshold used by IsInvertible
	// pre-checks.
	DefaultSingularThreshold = 1e-10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterationsInvalid  = "matrix: WithMaxIterations: n must be > 0"
	panicToleranceInvalid      = "matrix: WithTolerance: tol must be finite and > 0"
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite and >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	maxIterations  int     // > 0; DefaultMaxIterations
	tolerance      float64 // > 0; DefaultTolerance
	pivotTolerance float64 // >= 0; DefaultPivotTolerance
}

// MaxIterations returns the resolved Schulz iteration budget.
func (o Options) MaxIterations() int { return o.maxIterations }

// Tolerance returns the resolved Schulz convergence tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// PivotTolerance returns the resolved LUP singularity threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTolerance }

// ---------- Constructors (WithX) ----------

// WithMaxIterations sets the Schulz iteration budget.
// Implementation:
//   - Stage 1: validate n > 0.
//   - Stage 2: return a setter that writes n into Options.
//
// Errors:
//   - Panics with a stable message when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithTolerance sets the absolute convergence tolerance of the Schulz iteration.
// Panics unless tol is finite and strictly positive.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithPivotTolerance sets the smallest acceptable pivot magnitude for LUP.
// Zero accepts any non-zero pivot. Panics unless tol is finite and ≥ 0.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTolerance = tol }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Last-writer-wins semantics; pure function.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for kernels.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIterations:  DefaultMaxIterations,
		tolerance:      DefaultTolerance,
		pivotTolerance: DefaultPivotTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
