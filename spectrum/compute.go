// SPDX-License-Identifier: MIT

package spectrum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tbribbon/hopping"
	"github.com/katalvlaran/tbribbon/internal/ctxlog"
	"github.com/katalvlaran/tbribbon/matrix"
	"github.com/katalvlaran/tbribbon/ribbon"
)

// ErrSolverOutput indicates a solver returned the wrong number of eigenvalues.
var ErrSolverOutput = errors.New("spectrum: solver returned wrong eigenvalue count")

// slot holds the outcome of one mesh point; each worker writes only its own.
type slot struct {
	energies []float64
	residual float64
	err      error // non-convergence, recorded as Skipped
}

// Compute assembles and diagonalizes the ribbon of the given width at each of
// nk mesh momenta and returns the collected spectrum.
//
// Implementation:
//   - Stage 1: build the mesh and a width-wide Assembler.
//   - Stage 2: fan samples out over an errgroup limited to the worker count;
//     each task assembles into a pooled buffer, measures the Hermitian
//     residual and runs the solver, writing into its own slot.
//   - Stage 3: walk the slots in mesh order, gathering samples, skipped
//     points and ill-conditioning warnings, and log them.
//
// Errors:
//   - ErrInvalidMesh, ribbon.ErrNilModel, ribbon.ErrInvalidWidth.
//   - ErrSolverOutput, and any solver error other than matrix.ErrEigenFailed.
//   - ctx.Err() when the context is cancelled.
//
// Non-convergence is not an error here; see Result.Err.
func Compute(ctx context.Context, m *hopping.Model, width, nk int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	mesh, err := Mesh(nk, o.mesh)
	if err != nil {
		return nil, err
	}
	asm, err := ribbon.NewAssembler(m, width)
	if err != nil {
		return nil, err
	}
	log := ctxlog.FromContext(ctx)

	var (
		slots = make([]slot, nk)
		pool  sync.Pool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, k := range mesh {
		if gctx.Err() != nil {
			break
		}
		i, k := i, k
		g.Go(func() error {
			return solveSample(gctx, asm, o, &pool, i, k, &slots[i])
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Mesh: mesh}
	samples := make([]Sample, 0, nk)
	for i, s := range slots {
		if s.err != nil {
			res.Skipped = append(res.Skipped, Skipped{Index: i, K: mesh[i], Err: s.err})
			log.Warn("sample skipped",
				slog.Int("index", i),
				slog.Float64("k", mesh[i]),
				slog.String("error", s.err.Error()))
			continue
		}
		if math.IsNaN(s.residual) || s.residual > o.hermTol {
			res.Warnings = append(res.Warnings, IllConditioned{Index: i, K: mesh[i], Residual: s.residual})
			log.Warn("assembled hamiltonian is not hermitian within tolerance",
				slog.Int("index", i),
				slog.Float64("k", mesh[i]),
				slog.Float64("residual", s.residual),
				slog.Float64("tolerance", o.hermTol))
		}
		samples = append(samples, Sample{Index: i, K: mesh[i], Energies: s.energies})
	}
	if res.Spectrum, err = NewBandSpectrum(nk, samples); err != nil {
		return nil, err
	}
	// an all-skipped run still reports the ribbon's band count
	res.Spectrum.bands = asm.Dim()

	if len(res.Skipped) > 0 {
		log.Warn("mesh completed with skipped samples", slog.String("summary", res.Err().Error()))
	}
	log.Debug("spectrum computed",
		slog.Int("width", width),
		slog.Int("nk", nk),
		slog.Int("bands", asm.Dim()),
		slog.Int("samples", len(samples)),
		slog.Int("skipped", len(res.Skipped)),
		slog.Int("ill_conditioned", len(res.Warnings)),
		slog.Int("workers", o.workers))

	return res, nil
}

// solveSample fills dst for mesh point i at momentum k.
func solveSample(ctx context.Context, asm *ribbon.Assembler, o options, pool *sync.Pool, i int, k float64, dst *slot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf, ok := pool.Get().(*matrix.CDense)
	if !ok {
		var err error
		if buf, err = asm.NewBuffer(); err != nil {
			return fmt.Errorf("spectrum: sample %d: %w", i, err)
		}
	}
	defer pool.Put(buf)

	if err := asm.AssembleInto(buf, k); err != nil {
		return fmt.Errorf("spectrum: sample %d: %w", i, err)
	}
	residual, err := matrix.HermitianResidual(buf)
	if err != nil {
		return fmt.Errorf("spectrum: sample %d: %w", i, err)
	}
	dst.residual = residual

	vals, err := o.solver.Eigenvalues(buf)
	if err != nil {
		if errors.Is(err, matrix.ErrEigenFailed) {
			dst.err = err
			return nil
		}
		return fmt.Errorf("spectrum: sample %d: %w", i, err)
	}
	if len(vals) != asm.Dim() {
		return fmt.Errorf("spectrum: sample %d: got %d want %d: %w", i, len(vals), asm.Dim(), ErrSolverOutput)
	}
	sort.Float64s(vals)
	dst.energies = vals

	return nil
}
