// SPDX-License-Identifier: MIT

package spectrum

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidSpectrum indicates inconsistent samples passed to NewBandSpectrum.
var ErrInvalidSpectrum = errors.New("spectrum: invalid band spectrum")

// Sample is the spectrum at one mesh point.
type Sample struct {
	Index    int       // position in the full mesh
	K        float64   // momentum in radians
	Energies []float64 // ascending, length == BandSpectrum.Bands()
}

// BandSpectrum is an ordered list of samples over a mesh of NK points.
// Skipped mesh points are simply absent, so len(Samples) <= NK.
type BandSpectrum struct {
	NK      int
	Samples []Sample
	bands   int
}

// NewBandSpectrum validates samples and wraps them.
// Samples must be in strictly increasing Index order within [0, nk), share
// one length and hold ascending energies.
func NewBandSpectrum(nk int, samples []Sample) (*BandSpectrum, error) {
	if nk < 1 {
		return nil, fmt.Errorf("nk=%d: %w", nk, ErrInvalidSpectrum)
	}
	bands := -1
	prev := -1
	for _, s := range samples {
		if s.Index <= prev || s.Index >= nk {
			return nil, fmt.Errorf("sample index %d out of order or range: %w", s.Index, ErrInvalidSpectrum)
		}
		prev = s.Index
		if bands < 0 {
			bands = len(s.Energies)
		}
		if len(s.Energies) != bands {
			return nil, fmt.Errorf("sample %d has %d energies, want %d: %w", s.Index, len(s.Energies), bands, ErrInvalidSpectrum)
		}
		if !sort.Float64sAreSorted(s.Energies) {
			return nil, fmt.Errorf("sample %d energies not ascending: %w", s.Index, ErrInvalidSpectrum)
		}
	}
	if bands < 0 {
		bands = 0
	}

	return &BandSpectrum{NK: nk, Samples: samples, bands: bands}, nil
}

// Bands returns the number of bands (energies per sample).
func (s *BandSpectrum) Bands() int { return s.bands }

// Len returns the number of present samples.
func (s *BandSpectrum) Len() int { return len(s.Samples) }

// Band returns band b across all present samples, in mesh order.
func (s *BandSpectrum) Band(b int) []float64 {
	if b < 0 || b >= s.bands {
		return nil
	}
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Energies[b]
	}

	return out
}

// Momenta returns the momenta (radians) of the present samples.
func (s *BandSpectrum) Momenta() []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.K
	}

	return out
}

// Window returns the samples whose reduced momentum k/2π lies in [kmin, kmax].
// The receiver is not modified; NK is kept so mesh indices stay meaningful.
func (s *BandSpectrum) Window(kmin, kmax float64) *BandSpectrum {
	out := &BandSpectrum{NK: s.NK, bands: s.bands}
	for _, smp := range s.Samples {
		r := Reduced(smp.K)
		if r >= kmin && r <= kmax {
			out.Samples = append(out.Samples, smp)
		}
	}

	return out
}

// Skipped records a mesh point dropped because the solver failed on it.
type Skipped struct {
	Index int
	K     float64
	Err   error
}

// IllConditioned records a mesh point whose assembled matrix was not
// Hermitian within tolerance. Its eigenvalues are kept but untrustworthy.
type IllConditioned struct {
	Index    int
	K        float64
	Residual float64
}

// SkippedError summarizes every skipped sample of a run.
type SkippedError struct {
	NK      int
	Samples []Skipped
}

func (e *SkippedError) Error() string {
	idx := make([]string, len(e.Samples))
	for i, s := range e.Samples {
		idx[i] = fmt.Sprint(s.Index)
	}

	return fmt.Sprintf("spectrum: %d of %d samples skipped (indices %s)", len(e.Samples), e.NK, strings.Join(idx, ","))
}

// Unwrap exposes the per-sample causes to errors.Is / errors.As.
func (e *SkippedError) Unwrap() []error {
	out := make([]error, len(e.Samples))
	for i, s := range e.Samples {
		out[i] = s.Err
	}

	return out
}

// Result is everything Compute produces.
type Result struct {
	Mesh     []float64 // full mesh in radians, including skipped points
	Spectrum *BandSpectrum
	Skipped  []Skipped
	Warnings []IllConditioned
}

// Err returns a *SkippedError when any sample was skipped, nil otherwise.
func (r *Result) Err() error {
	if len(r.Skipped) == 0 {
		return nil
	}

	return &SkippedError{NK: len(r.Mesh), Samples: r.Skipped}
}

// ReducedMesh returns the full mesh in units of the reciprocal period.
func (r *Result) ReducedMesh() []float64 {
	out := make([]float64, len(r.Mesh))
	for i, k := range r.Mesh {
		out[i] = Reduced(k)
	}

	return out
}
