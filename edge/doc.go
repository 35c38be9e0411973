// Package edge flags bands of a ribbon spectrum that look like edge states.
//
// The rule is a coarse heuristic, not a topological invariant. Band b is an
// edge band when
//
//	min_k E_b(k) < 0 < max_k E_b(k)   and   |E_b(k_probe)| < threshold
//
// i.e. the band traverses the bulk gap around zero energy and sits near zero
// at the probe momentum. The probe defaults to mesh index NK/2, the center of
// the mesh. That is only meaningful when the expected crossing momentum lies
// at the mesh center; for any other convention pass WithProbeIndex.
package edge
