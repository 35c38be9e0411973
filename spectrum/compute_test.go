package spectrum_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/tbribbon/hopping"
	"github.com/katalvlaran/tbribbon/internal/ctxlog"
	"github.com/katalvlaran/tbribbon/matrix"
	"github.com/katalvlaran/tbribbon/ribbon"
	"github.com/katalvlaran/tbribbon/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcSolver adapts a function to spectrum.Solver.
type funcSolver func(h *matrix.CDense) ([]float64, error)

func (f funcSolver) Eigenvalues(h *matrix.CDense) ([]float64, error) { return f(h) }

// TestComputeEndToEnd runs the two-band model at width 2 over 4 momenta.
func TestComputeEndToEnd(t *testing.T) {
	m := twoBandModel(t)
	for name, s := range solvers {
		t.Run(name, func(t *testing.T) {
			res, err := spectrum.Compute(context.Background(), m, 2, 4, spectrum.WithSolver(s))
			require.NoError(t, err)
			require.NoError(t, res.Err())
			require.Empty(t, res.Warnings)
			require.Len(t, res.Mesh, 4)
			require.Equal(t, 4, res.Spectrum.Len())
			require.Equal(t, 4, res.Spectrum.Bands())

			for i, smp := range res.Spectrum.Samples {
				require.Equal(t, i, smp.Index)
				require.Len(t, smp.Energies, 4)
				require.True(t, sort.Float64sAreSorted(smp.Energies))

				e := math.Sqrt(1 + math.Cos(smp.K)*math.Cos(smp.K))
				want := []float64{-e, -e, e, e}
				for b := range want {
					assert.InDelta(t, want[b], smp.Energies[b], 1e-9)
				}
			}
		})
	}
}

// TestComputeOrderingAndLength checks every sample of a larger ribbon.
func TestComputeOrderingAndLength(t *testing.T) {
	const width, nk = 7, 13
	res, err := spectrum.Compute(context.Background(), chainModel(t), width, nk)
	require.NoError(t, err)
	require.Equal(t, nk, res.Spectrum.Len())
	for _, smp := range res.Spectrum.Samples {
		require.Len(t, smp.Energies, width)
		require.True(t, sort.Float64sAreSorted(smp.Energies))
	}
}

// TestComputeWorkersDeterministic compares sequential and parallel runs.
func TestComputeWorkersDeterministic(t *testing.T) {
	m := chainModel(t)
	seq, err := spectrum.Compute(context.Background(), m, 5, 17,
		spectrum.WithWorkers(1), spectrum.WithSolver(spectrum.JacobiSolver{}))
	require.NoError(t, err)
	par, err := spectrum.Compute(context.Background(), m, 5, 17,
		spectrum.WithWorkers(4), spectrum.WithSolver(spectrum.JacobiSolver{}))
	require.NoError(t, err)

	require.Equal(t, seq.Mesh, par.Mesh)
	require.Equal(t, seq.Spectrum.Samples, par.Spectrum.Samples)
}

// TestComputeMatchesDirectAssembly cross-checks one sample against a manual pipeline.
func TestComputeMatchesDirectAssembly(t *testing.T) {
	m := chainModel(t)
	res, err := spectrum.Compute(context.Background(), m, 4, 5, spectrum.WithMeshKind(spectrum.MeshHalfOpen))
	require.NoError(t, err)

	smp := res.Spectrum.Samples[3]
	h, err := ribbon.Assemble(m, 4, smp.K)
	require.NoError(t, err)
	want, err := spectrum.GonumSolver{}.Eigenvalues(h)
	require.NoError(t, err)
	for i := range want {
		assert.InDelta(t, want[i], smp.Energies[i], 1e-12)
	}
}

// cosSolver fails exactly where H[0,0] = cos k reaches -1, i.e. at k = π.
func cosSolver() spectrum.Solver {
	return funcSolver(func(h *matrix.CDense) ([]float64, error) {
		z, err := h.At(0, 0)
		if err != nil {
			return nil, err
		}
		if real(z) < -0.99 {
			return nil, fmt.Errorf("stub: %w", matrix.ErrEigenFailed)
		}
		return spectrum.GonumSolver{}.Eigenvalues(h)
	})
}

// cosModel has H[y,y] = cos k for a single orbital.
func cosModel(t *testing.T) *hopping.Model {
	half := block(t, 1, 0.5)
	m, err := hopping.NewModel(1, map[hopping.Displacement]*matrix.CDense{
		{DX: 1}: half, {DX: -1}: half,
	})
	require.NoError(t, err)
	return m
}

// TestComputeSkipsNonConvergedSample records and reports the failed sample
// while keeping every other one.
func TestComputeSkipsNonConvergedSample(t *testing.T) {
	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	res, err := spectrum.Compute(ctx, cosModel(t), 1, 4,
		spectrum.WithMeshKind(spectrum.MeshHalfOpen), spectrum.WithSolver(cosSolver()))
	require.NoError(t, err)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 2, res.Skipped[0].Index)
	assert.InDelta(t, math.Pi, res.Skipped[0].K, 1e-15)
	require.Equal(t, 3, res.Spectrum.Len())
	assert.InDeltaSlice(t, []float64{0, math.Pi / 2, 3 * math.Pi / 2}, res.Spectrum.Momenta(), 1e-12)

	sumErr := res.Err()
	require.ErrorIs(t, sumErr, matrix.ErrEigenFailed)
	var se *spectrum.SkippedError
	require.True(t, errors.As(sumErr, &se))
	assert.Contains(t, se.Error(), "1 of 4 samples skipped")
	assert.Contains(t, logs.String(), "sample skipped")
}

// TestComputeAllSkippedKeepsBandCount tolerates a run where nothing converges.
func TestComputeAllSkippedKeepsBandCount(t *testing.T) {
	fail := funcSolver(func(*matrix.CDense) ([]float64, error) { return nil, matrix.ErrEigenFailed })
	res, err := spectrum.Compute(context.Background(), twoBandModel(t), 3, 5, spectrum.WithSolver(fail))
	require.NoError(t, err)
	require.Len(t, res.Skipped, 5)
	require.Equal(t, 0, res.Spectrum.Len())
	require.Equal(t, 6, res.Spectrum.Bands())
}

// TestComputeFatalSolverError aborts on errors other than non-convergence.
func TestComputeFatalSolverError(t *testing.T) {
	boom := errors.New("boom")
	fail := funcSolver(func(*matrix.CDense) ([]float64, error) { return nil, boom })
	_, err := spectrum.Compute(context.Background(), twoBandModel(t), 1, 3, spectrum.WithSolver(fail))
	require.ErrorIs(t, err, boom)

	short := funcSolver(func(*matrix.CDense) ([]float64, error) { return []float64{0}, nil })
	_, err = spectrum.Compute(context.Background(), twoBandModel(t), 1, 3, spectrum.WithSolver(short))
	require.ErrorIs(t, err, spectrum.ErrSolverOutput)
}

// TestComputeFlagsIllConditioned warns but keeps samples of a non-reciprocal model.
func TestComputeFlagsIllConditioned(t *testing.T) {
	m, err := hopping.NewModel(1, map[hopping.Displacement]*matrix.CDense{
		{DY: 1}: block(t, 1, 1),
	})
	require.NoError(t, err)

	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))
	res, err := spectrum.Compute(ctx, m, 2, 3)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 3)
	assert.InDelta(t, 1.0, res.Warnings[0].Residual, 1e-15)
	require.Equal(t, 3, res.Spectrum.Len())
	assert.Contains(t, logs.String(), "not hermitian")

	// a generous tolerance silences the advisory
	res, err = spectrum.Compute(context.Background(), m, 2, 3, spectrum.WithHermitianTolerance(2))
	require.NoError(t, err)
	require.Empty(t, res.Warnings)
}

// TestComputeInvalidInput covers parameter validation.
func TestComputeInvalidInput(t *testing.T) {
	m := twoBandModel(t)
	_, err := spectrum.Compute(context.Background(), m, 2, 0)
	require.ErrorIs(t, err, spectrum.ErrInvalidMesh)

	_, err = spectrum.Compute(context.Background(), m, 0, 4)
	require.ErrorIs(t, err, ribbon.ErrInvalidWidth)

	_, err = spectrum.Compute(context.Background(), nil, 2, 4)
	require.ErrorIs(t, err, ribbon.ErrNilModel)
}

// TestComputeCancelled returns the context error.
func TestComputeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := spectrum.Compute(ctx, twoBandModel(t), 2, 8)
	require.ErrorIs(t, err, context.Canceled)
}

// TestOptionPanics verifies option constructors reject nonsense.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { spectrum.WithSolver(nil) })
	require.Panics(t, func() { spectrum.WithWorkers(0) })
	require.Panics(t, func() { spectrum.WithHermitianTolerance(-1) })
	require.Panics(t, func() { spectrum.WithHermitianTolerance(math.NaN()) })
}
