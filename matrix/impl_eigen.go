// SPDX-License-Identifier: MIT
// Package matrix: eigenvalue kernels.
//
// Purpose:
//   - Cyclic Jacobi eigenvalues for real symmetric matrices (EigenSym).
//   - Hermitian eigenvalues through the real-symmetric embedding (EigenHermitian).
//
// Notes:
//   - Kernels read the upper triangle as the source of truth and keep the
//     working copy exactly symmetric, the same contract LAPACK's dsyev has.
//     Callers that need a symmetry guarantee validate beforehand.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Operation name constants for unified error wrapping.
const (
	opEigenSym       = "EigenSym"
	opEigenHermitian = "EigenHermitian"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// EigenSym computes all eigenvalues of a real symmetric matrix with cyclic
// Jacobi sweeps and returns them in ascending order.
//
// Implementation:
//   - Stage 1: copy the upper triangle into a symmetric working buffer.
//   - Stage 2: sweep every (p,q), p<q, in row order, annihilating A[p,q]
//     with a plane rotation. Stop once off(A) <= tol·||A||_F.
//   - Stage 3: read the diagonal and sort.
//
// Inputs:
//   - m: square matrix; only its upper triangle is read.
//   - opts: WithTolerance, WithMaxSweeps.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrEigenFailed when off(A) is still above threshold after maxSweeps
//     (NaN input always ends here).
//
// Determinism:
//   - Fixed sweep order and fixed update order produce stable results.
//
// Complexity:
//   - Time O(sweeps · n³), Space O(n²).
func EigenSym(m *Dense, opts ...Option) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opEigenSym, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opEigenSym, ErrNonSquare)
	}
	o := gatherOptions(opts...)
	n := m.r

	// Symmetric working copy mirrored from the upper triangle.
	a := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			a[i*n+j] = m.data[i*n+j]
			a[j*n+i] = m.data[i*n+j]
		}
	}

	scale := frobenius(a)
	if scale == 0 {
		return make([]float64, n), nil
	}
	threshold := o.tol * scale

	var (
		sweep, p, q, k int
		converged      bool
		app, aqq, apq  float64 // A[p,p], A[q,q], A[p,q]
		akp, akq       float64 // A[k,p], A[k,q]
		theta, t, c, s float64 // rotation parameters
		newKP, newKQ   float64
		offNorm        float64
	)
	for sweep = 0; sweep < o.maxSweeps; sweep++ {
		offNorm = offDiagonal(a, n)
		if offNorm <= threshold {
			converged = true
			break
		}
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = a[p*n+q]
				if apq == 0 {
					continue
				}
				app = a[p*n+p]
				aqq = a[q*n+q]
				// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1))
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for k = 0; k < n; k++ {
					if k == p || k == q {
						continue
					}
					akp = a[k*n+p]
					akq = a[k*n+q]
					newKP = c*akp - s*akq
					newKQ = s*akp + c*akq
					a[k*n+p], a[p*n+k] = newKP, newKP
					a[k*n+q], a[q*n+k] = newKQ, newKQ
				}
				a[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
				a[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
				a[p*n+q], a[q*n+p] = 0, 0
			}
		}
	}
	if !converged {
		// The last sweep may have finished the job.
		offNorm = offDiagonal(a, n)
		if !(offNorm <= threshold) {
			return nil, matrixErrorf(opEigenSym, fmt.Errorf("off-diagonal %g after %d sweeps: %w", offNorm, o.maxSweeps, ErrEigenFailed))
		}
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a[i*n+i]
	}
	sort.Float64s(eigs)

	return eigs, nil
}

// EigenHermitian returns the ascending eigenvalues of a Hermitian matrix by
// running EigenSym on its RealEmbedding and folding the doubled spectrum.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
// Complexity: O(sweeps · 8n³).
func EigenHermitian(h *CDense, opts ...Option) ([]float64, error) {
	emb, err := RealEmbedding(h)
	if err != nil {
		return nil, matrixErrorf(opEigenHermitian, err)
	}
	vals, err := EigenSym(emb, opts...)
	if err != nil {
		return nil, matrixErrorf(opEigenHermitian, err)
	}
	out, err := FoldEmbedded(vals)
	if err != nil {
		return nil, matrixErrorf(opEigenHermitian, err)
	}

	return out, nil
}

// frobenius returns ||A||_F of a flat square buffer.
func frobenius(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// offDiagonal returns sqrt(Σ_{i≠j} A[i,j]²) of a flat n×n buffer.
func offDiagonal(a []float64, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				sum += a[i*n+j] * a[i*n+j]
			}
		}
	}

	return math.Sqrt(sum)
}
