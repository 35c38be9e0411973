// Package spectrum diagonalizes ribbon Hamiltonians over a momentum mesh.
//
// Compute drives ribbon assembly and a Hermitian eigensolver once per mesh
// point and collects a BandSpectrum: one ascending energy list per momentum
// sample. Samples are independent, so Compute may spread them over several
// workers without changing the result or its order.
//
// Failure policy:
//   - A solver that does not converge on a sample (matrix.ErrEigenFailed)
//     skips that sample only; it is logged, recorded in Result.Skipped and
//     summarized by Result.Err.
//   - An assembled matrix whose Hermitian residual exceeds the configured
//     tolerance is still diagonalized; the sample is recorded in
//     Result.Warnings as IllConditioned.
//   - Any other error aborts the whole computation.
package spectrum
