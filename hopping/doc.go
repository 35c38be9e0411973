// Package hopping loads real-space tight-binding hopping parameters.
//
// The input is the plain-text "hr" layout written by Wannier-function codes:
//
//	<comment line>
//	<orbital count>
//	<record count>
//	<record count degeneracy weights, wrapped over any number of lines>
//	rx ry rz m n re im      (record count × orbitals² times)
//
// Only in-plane displacements (rz == 0) are kept; each becomes an
// orbitals×orbitals complex block keyed by (rx, ry). Everything after the
// degeneracy weights is consumed as one whitespace-separated token stream,
// so producers may wrap records however they like.
//
// The degeneracy weights are parsed and exposed through Model.Degeneracies
// but never applied to the hopping blocks. Duplicate (rx, ry, 0) entries for
// the same orbital pair overwrite earlier ones (last write wins).
package hopping
