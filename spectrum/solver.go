// SPDX-License-Identifier: MIT

package spectrum

import (
	"fmt"

	"github.com/katalvlaran/tbribbon/matrix"
	"gonum.org/v1/gonum/mat"
)

// Solver returns the ascending real eigenvalues of a Hermitian matrix.
// Results are defined only for Hermitian h; both triangles may be read.
// Implementations must not modify h.
type Solver interface {
	Eigenvalues(h *matrix.CDense) ([]float64, error)
}

// GonumSolver diagonalizes through gonum's LAPACK-backed symmetric
// eigensolver applied to the real embedding of h.
type GonumSolver struct{}

// Eigenvalues implements Solver.
// Errors: matrix.ErrEigenFailed when the factorization does not converge.
func (GonumSolver) Eigenvalues(h *matrix.CDense) ([]float64, error) {
	emb, err := matrix.RealEmbedding(h)
	if err != nil {
		return nil, fmt.Errorf("gonum solver: %w", err)
	}
	n := emb.Rows()
	sym := mat.NewSymDense(n, emb.RawData())

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return nil, fmt.Errorf("gonum solver: factorize %dx%d: %w", n, n, matrix.ErrEigenFailed)
	}
	vals, err := matrix.FoldEmbedded(eig.Values(nil))
	if err != nil {
		return nil, fmt.Errorf("gonum solver: %w", err)
	}

	return vals, nil
}

// JacobiSolver diagonalizes with the in-repo cyclic Jacobi kernel.
// It needs no LAPACK and is deterministic to the last bit, at the cost of
// speed on large ribbons. Zero fields fall back to matrix defaults.
type JacobiSolver struct {
	Tolerance float64 // relative off-diagonal threshold
	MaxSweeps int     // sweep budget before ErrEigenFailed
}

// Eigenvalues implements Solver.
func (s JacobiSolver) Eigenvalues(h *matrix.CDense) ([]float64, error) {
	var opts []matrix.Option
	if s.Tolerance > 0 {
		opts = append(opts, matrix.WithTolerance(s.Tolerance))
	}
	if s.MaxSweeps > 0 {
		opts = append(opts, matrix.WithMaxSweeps(s.MaxSweeps))
	}
	vals, err := matrix.EigenHermitian(h, opts...)
	if err != nil {
		return nil, fmt.Errorf("jacobi solver: %w", err)
	}

	return vals, nil
}
