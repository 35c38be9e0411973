package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMesh indicates a momentum mesh with fewer than one point.
var ErrInvalidMesh = errors.New("spectrum: mesh needs nk >= 1")

// MeshKind selects how nk momenta cover one period [0, 2π].
type MeshKind int

const (
	// MeshClosed samples k_i = 2π·i/(nk−1): both 0 and 2π are included as
	// distinct points. nk == 1 yields {0}.
	MeshClosed MeshKind = iota

	// MeshHalfOpen samples k_i = 2π·i/nk over [0, 2π).
	MeshHalfOpen
)

// String returns the config spelling of the kind.
func (k MeshKind) String() string {
	switch k {
	case MeshClosed:
		return "closed"
	case MeshHalfOpen:
		return "half_open"
	default:
		return fmt.Sprintf("MeshKind(%d)", int(k))
	}
}

// ParseMeshKind maps "closed" / "half_open" to a MeshKind.
func ParseMeshKind(s string) (MeshKind, error) {
	switch s {
	case "closed", "":
		return MeshClosed, nil
	case "half_open":
		return MeshHalfOpen, nil
	default:
		return 0, fmt.Errorf("spectrum: unknown mesh kind %q", s)
	}
}

// Mesh returns nk momenta in radians, ascending.
//
// Errors: ErrInvalidMesh when nk < 1 or kind is unknown.
func Mesh(nk int, kind MeshKind) ([]float64, error) {
	if nk < 1 {
		return nil, fmt.Errorf("nk=%d: %w", nk, ErrInvalidMesh)
	}
	var den float64
	switch kind {
	case MeshClosed:
		den = float64(nk - 1)
	case MeshHalfOpen:
		den = float64(nk)
	default:
		return nil, fmt.Errorf("%v: %w", kind, ErrInvalidMesh)
	}
	out := make([]float64, nk)
	if den == 0 {
		return out, nil
	}
	for i := range out {
		out[i] = 2 * math.Pi * float64(i) / den
	}

	return out, nil
}

// Reduced converts a momentum in radians to units of the reciprocal period.
func Reduced(k float64) float64 {
	return k / (2 * math.Pi)
}
