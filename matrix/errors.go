// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every kernel in this package returns one of these sentinels, wrapped at the
// operation boundary with matrixErrorf so callers keep matching via errors.Is.
// No kernel panics on user-triggered conditions; option constructors panic
// only on nonsensical parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Return the sentinel directly or wrap it as fmt.Errorf("ctx: %w", ErrX).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/AddBlock) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a data slice whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a real matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNotHermitian signals that a complex matrix differs from its conjugate
	// transpose by more than the configured tolerance.
	ErrNotHermitian = errors.New("matrix: matrix is not hermitian within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEigenFailed indicates that an eigenvalue routine failed to converge
	// under the given tolerance and sweep budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
