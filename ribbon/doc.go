// Package ribbon assembles finite-width slab Hamiltonians from a hopping model.
//
// A ribbon is periodic along x and finite along y: width unit cells are
// stacked in y, each carrying the model's orbitals. For a momentum kx the
// (width·orbitals)² matrix is built block by block:
//
//	H[y, y+dy] += Block(dx, dy) · exp(i·kx·dx)   for 0 <= y+dy < width
//
// Only dx picks up a Bloch phase. Terms whose target cell y+dy falls outside
// [0, width) are dropped, which opens the two physical edges of the ribbon.
//
// The assembler never symmetrizes. The result is Hermitian exactly when the
// model lists every bond in both directions, (dx,dy)→M together with
// (−dx,−dy)→M†, which is the convention of real-space hopping files.
package ribbon
