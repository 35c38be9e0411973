// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction and the
// eigenvalue kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultTolerance is the relative off-diagonal threshold at which the
	// Jacobi kernel declares convergence: off(A) <= tol * ||A||_F.
	DefaultTolerance = 1e-13

	// DefaultMaxSweeps caps the number of full cyclic Jacobi sweeps.
	// Cyclic Jacobi converges quadratically; well-conditioned inputs need < 15.
	DefaultMaxSweeps = 100
)

const (
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, positive"
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: sweeps must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	tol            float64 // > 0; DefaultTolerance
	maxSweeps      int     // > 0; DefaultMaxSweeps
}

// WithValidateNaNInf enables strict finite-value validation on Set (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Useful when a caller wants the eigen kernel itself to surface bad data as
// ErrEigenFailed instead of rejecting it at Set time.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTolerance sets the relative convergence threshold of the Jacobi kernel.
// Panics when tol is not a finite positive number.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxSweeps caps the number of cyclic Jacobi sweeps.
// Panics when sweeps <= 0.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// gatherOptions applies user setters over the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		tol:            DefaultTolerance,
		maxSweeps:      DefaultMaxSweeps,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// isNonFiniteComplex reports whether either component of z is NaN or ±Inf.
func isNonFiniteComplex(z complex128) bool {
	return isNonFinite(real(z)) || isNonFinite(imag(z))
}
