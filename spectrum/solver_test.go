package spectrum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tbribbon/matrix"
	"github.com/katalvlaran/tbribbon/ribbon"
	"github.com/katalvlaran/tbribbon/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solvers = map[string]spectrum.Solver{
	"gonum":  spectrum.GonumSolver{},
	"jacobi": spectrum.JacobiSolver{},
}

// TestSolversKnownSpectrum checks {0, 2} for [[1, i], [-i, 1]].
func TestSolversKnownSpectrum(t *testing.T) {
	h := block(t, 2, 1, 1i, -1i, 1)
	for name, s := range solvers {
		t.Run(name, func(t *testing.T) {
			vals, err := s.Eigenvalues(h)
			require.NoError(t, err)
			require.Len(t, vals, 2)
			assert.InDelta(t, 0.0, vals[0], 1e-10)
			assert.InDelta(t, 2.0, vals[1], 1e-10)
		})
	}
}

// TestSolversAgreeOnRibbon compares both solvers on an assembled ribbon.
func TestSolversAgreeOnRibbon(t *testing.T) {
	h, err := ribbon.Assemble(chainModel(t), 6, 1.1)
	require.NoError(t, err)

	a, err := spectrum.GonumSolver{}.Eigenvalues(h)
	require.NoError(t, err)
	b, err := spectrum.JacobiSolver{Tolerance: 1e-14, MaxSweeps: 60}.Eigenvalues(h)
	require.NoError(t, err)
	require.Len(t, a, 6)
	require.Len(t, b, 6)
	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-9)
	}
}

// TestSolversDoNotMutateInput guards the read-only contract.
func TestSolversDoNotMutateInput(t *testing.T) {
	h := block(t, 2, 1, 0.5-0.5i, 0.5+0.5i, -1)
	before := h.RawData()
	for _, s := range solvers {
		_, err := s.Eigenvalues(h)
		require.NoError(t, err)
	}
	require.Equal(t, before, h.RawData())
}

// TestJacobiSolverNonConvergence surfaces matrix.ErrEigenFailed.
func TestJacobiSolverNonConvergence(t *testing.T) {
	h, err := matrix.NewCDenseFrom(2, 2, []complex128{0, complex(math.NaN(), 0), complex(math.NaN(), 0), 0}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	_, err = spectrum.JacobiSolver{MaxSweeps: 3}.Eigenvalues(h)
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}
