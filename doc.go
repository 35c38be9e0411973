// Package tbribbon computes edge-state spectra of tight-binding ribbons.
//
// 🚀 What does it do?
//
//	Starting from a Wannier90 real-space hopping file it:
//		• Parses the in-plane hopping blocks (hopping/)
//		• Stacks W unit cells into a ribbon, periodic in x, open in y (ribbon/)
//		• Diagonalizes the ribbon Hamiltonian over a momentum mesh (spectrum/)
//		• Flags bands that cross the gap near zero energy (edge/)
//
// ✨ Properties
//
//   - Deterministic: sorted displacements, fixed accumulation order
//   - Two solvers: gonum LAPACK by default, a pure-Go Jacobi kernel for
//     bit-reproducible runs
//   - Concurrent: momentum samples are independent and run in parallel
//     without changing the output order
//
// Packages:
//
//	matrix/    - real and complex dense matrices, validators, Jacobi eigen kernel
//	hopping/   - hr.dat parser, immutable Model, LRU model cache
//	ribbon/    - finite-width Hamiltonian assembly at a given kx
//	spectrum/  - mesh, solvers, concurrent Compute, BandSpectrum
//	edge/      - crossing-plus-probe edge classifier
//	cmd/ribbon - CLI emitting JSON for plotting
//
// Ribbon of width 3 (cells stacked along y, each row periodic in x):
//
//	y=2  ─ ○ ─ ○ ─ ○ ─   ← top edge
//	y=1  ─ ○ ─ ○ ─ ○ ─
//	y=0  ─ ○ ─ ○ ─ ○ ─   ← bottom edge
//
//	go run github.com/katalvlaran/tbribbon/cmd/ribbon compute -m wannier90_hr.dat -w 30
package tbribbon
