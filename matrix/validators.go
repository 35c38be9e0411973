// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and symmetry checks.
//  - Keep kernels minimal by delegating nil/shape/symmetry guards here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry checks run O(n²) over the strict upper triangle only.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// normalizeTol rejects non-finite tolerances and folds negative ones to |tol|.
func normalizeTol(tag string, tol float64) (float64, error) {
	if isNonFinite(tol) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}

	return math.Abs(tol), nil
}

// ValidateSymmetric checks that a real matrix is square and |A[i,j]-A[j,i]| <= tol.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, tol float64) error {
	const tag = "ValidateSymmetric"
	if m == nil {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf(tag, ErrNonSquare)
	}
	tol, err := normalizeTol(tag, tol)
	if err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// HermitianResidual returns max |m[i,j] - conj(m[j,i])| over all i ≤ j.
// The diagonal contributes 2|Im m[i,i]|, so a complex diagonal entry counts.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func HermitianResidual(m *CDense) (float64, error) {
	const tag = "HermitianResidual"
	if m == nil {
		return 0, validatorErrorf(tag, ErrNilMatrix)
	}
	if m.r != m.c {
		return 0, validatorErrorf(tag, ErrNonSquare)
	}
	var (
		n     = m.r
		worst float64
		d     float64
	)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d = cmplx.Abs(m.data[i*n+j] - cmplx.Conj(m.data[j*n+i]))
			// NaN never compares greater; surface it explicitly.
			if math.IsNaN(d) {
				return math.NaN(), nil
			}
			if d > worst {
				worst = d
			}
		}
	}

	return worst, nil
}

// ValidateHermitian checks that m is square and HermitianResidual(m) <= tol.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrNotHermitian.
func ValidateHermitian(m *CDense, tol float64) error {
	const tag = "ValidateHermitian"
	tol, err := normalizeTol(tag, tol)
	if err != nil {
		return err
	}
	res, err := HermitianResidual(m)
	if err != nil {
		return err
	}
	if math.IsNaN(res) || res > tol {
		return validatorErrorf(tag, fmt.Errorf("residual %g > %g: %w", res, tol, ErrNotHermitian))
	}

	return nil
}
