// Package matrix offers the dense numeric kernels of the ribbon calculator.
//
// The matrix package provides:
//
//   - CDense, a row-major complex128 matrix with block accumulation
//     (AddBlock), conjugate transpose and a reusable buffer (Zero).
//   - Dense, a row-major float64 matrix used as eigen-kernel storage.
//   - RealEmbedding / FoldEmbedded, which turn a Hermitian eigenproblem of
//     size n into a real symmetric one of size 2n and back.
//   - EigenSym (cyclic Jacobi) and EigenHermitian.
//   - Validators (ValidateSymmetric, HermitianResidual, ValidateHermitian).
//
// Errors are package-level sentinels (see errors.go) matched with errors.Is.
// Numeric policy (NaN/Inf validation, Jacobi tolerance and sweep cap) is
// configured through functional options.
package matrix
