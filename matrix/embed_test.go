package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tbribbon/matrix"
	"github.com/stretchr/testify/require"
)

// TestRealEmbeddingLayout checks the [[A,-B],[B,A]] block layout.
func TestRealEmbeddingLayout(t *testing.T) {
	h, err := matrix.NewCDenseFrom(1, 1, []complex128{2 + 3i})
	require.NoError(t, err)

	m, err := matrix.RealEmbedding(h)
	require.NoError(t, err)
	require.Equal(t, []float64{2, -3, 3, 2}, m.RawData())
}

// TestRealEmbeddingOfHermitianIsSymmetric verifies that a Hermitian input
// yields a symmetric real matrix.
func TestRealEmbeddingOfHermitianIsSymmetric(t *testing.T) {
	h, err := matrix.NewCDenseFrom(2, 2, []complex128{1, 2 - 1i, 2 + 1i, -1})
	require.NoError(t, err)

	m, err := matrix.RealEmbedding(h)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
}

// TestFoldEmbedded averages sorted pairs and rejects odd input.
func TestFoldEmbedded(t *testing.T) {
	got, err := matrix.FoldEmbedded([]float64{3, 1, 1, 3 + 2e-12})
	require.NoError(t, err)
	require.InDelta(t, 1.0, got[0], 1e-15)
	require.InDelta(t, 3.0, got[1], 1e-11)

	_, err = matrix.FoldEmbedded([]float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRealEmbeddingGuards covers nil and non-square input.
func TestRealEmbeddingGuards(t *testing.T) {
	_, err := matrix.RealEmbedding(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewCDense(1, 2)
	require.NoError(t, err)
	_, err = matrix.RealEmbedding(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
