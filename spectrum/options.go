package spectrum

import (
	"math"
	"runtime"
)

// DefaultHermitianTolerance is the residual max|H − H†| above which an
// assembled sample is flagged IllConditioned.
const DefaultHermitianTolerance = 1e-8

const (
	panicNilSolver      = "spectrum: WithSolver: solver must not be nil"
	panicWorkersInvalid = "spectrum: WithWorkers: workers must be >= 1"
	panicHermTolInvalid = "spectrum: WithHermitianTolerance: tol must be finite, non-negative"
)

// Option configures Compute.
type Option func(*options)

type options struct {
	solver  Solver
	mesh    MeshKind
	workers int
	hermTol float64
}

// WithSolver selects the eigensolver (default GonumSolver).
func WithSolver(s Solver) Option {
	if s == nil {
		panic(panicNilSolver)
	}

	return func(o *options) { o.solver = s }
}

// WithMeshKind selects the mesh convention (default MeshClosed).
func WithMeshKind(k MeshKind) Option {
	return func(o *options) { o.mesh = k }
}

// WithWorkers bounds the number of samples processed concurrently
// (default GOMAXPROCS). One worker processes the mesh in order.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithHermitianTolerance sets the IllConditioned threshold.
func WithHermitianTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicHermTolInvalid)
	}

	return func(o *options) { o.hermTol = tol }
}

func gatherOptions(user ...Option) options {
	o := options{
		solver:  GonumSolver{},
		mesh:    MeshClosed,
		workers: runtime.GOMAXPROCS(0),
		hermTol: DefaultHermitianTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
