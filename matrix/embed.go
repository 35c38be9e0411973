// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sort"
)

// RealEmbedding maps an n×n complex matrix H = A + iB onto the 2n×2n real
// matrix
//
//	M = | A  -B |
//	    | B   A |
//
// When H is Hermitian (A symmetric, B antisymmetric) M is real symmetric and
// its spectrum is the spectrum of H with every eigenvalue doubled, which lets
// any real-symmetric eigensolver diagonalize H.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²) time, 4n² floats of memory.
func RealEmbedding(h *CDense) (*Dense, error) {
	const tag = "RealEmbedding"
	if h == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if h.r != h.c {
		return nil, matrixErrorf(tag, ErrNonSquare)
	}
	n := h.r
	m := 2 * n
	out := &Dense{r: m, c: m, data: make([]float64, m*m), validate: h.validate}
	var (
		i, j int
		a, b float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a = real(h.data[i*n+j])
			b = imag(h.data[i*n+j])
			out.data[i*m+j] = a
			out.data[(i+n)*m+j+n] = a
			out.data[i*m+j+n] = -b
			out.data[(i+n)*m+j] = b
		}
	}

	return out, nil
}

// FoldEmbedded collapses the 2n ascending eigenvalues of a RealEmbedding back
// to the n eigenvalues of the original Hermitian matrix. Each doubled pair is
// averaged, which cancels the symmetric rounding split between partners.
//
// Errors: ErrDimensionMismatch when len(vals) is odd.
func FoldEmbedded(vals []float64) ([]float64, error) {
	if len(vals)%2 != 0 {
		return nil, matrixErrorf("FoldEmbedded", fmt.Errorf("odd length %d: %w", len(vals), ErrDimensionMismatch))
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	out := make([]float64, len(sorted)/2)
	for i := range out {
		out[i] = 0.5 * (sorted[2*i] + sorted[2*i+1])
	}

	return out, nil
}
