package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tbribbon/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateSymmetric covers the accept path and each failure sentinel.
func TestValidateSymmetric(t *testing.T) {
	sym, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2, 1})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2.1, 1})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.2))

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}

// TestHermitianResidual measures the largest deviation from m = m†.
func TestHermitianResidual(t *testing.T) {
	h, err := matrix.NewCDenseFrom(2, 2, []complex128{1, 2 - 1i, 2 + 1i, -1})
	require.NoError(t, err)
	res, err := matrix.HermitianResidual(h)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res)

	// complex diagonal entry: |i - (-i)| = 2
	d, err := matrix.NewCDenseFrom(1, 1, []complex128{1i})
	require.NoError(t, err)
	res, err = matrix.HermitianResidual(d)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res, 1e-15)

	// off-diagonal without its partner
	o, err := matrix.NewCDenseFrom(2, 2, []complex128{0, 0.5, 0, 0})
	require.NoError(t, err)
	res, err = matrix.HermitianResidual(o)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res, 1e-15)
}

// TestValidateHermitian checks sentinel mapping.
func TestValidateHermitian(t *testing.T) {
	o, err := matrix.NewCDenseFrom(2, 2, []complex128{0, 0.5, 0, 0})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateHermitian(o, 1e-9), matrix.ErrNotHermitian)
	require.NoError(t, matrix.ValidateHermitian(o, 0.5))

	rect, err := matrix.NewCDense(1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateHermitian(rect, 0), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateHermitian(nil, 0), matrix.ErrNilMatrix)
}
