// SPDX-License-Identifier: MIT

package edge

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tbribbon/spectrum"
)

var (
	// ErrEmptySpectrum indicates a spectrum without any sample to inspect.
	ErrEmptySpectrum = errors.New("edge: spectrum has no samples")

	// ErrProbeOutOfRange indicates a probe index outside [0, NK).
	ErrProbeOutOfRange = errors.New("edge: probe index out of range")
)

const (
	// DefaultThreshold is the zero-proximity bound at the probe, in the
	// energy units of the hopping file.
	DefaultThreshold = 0.15

	// ProbeMidpoint selects mesh index NK/2 as the probe.
	ProbeMidpoint = -1
)

const (
	panicThresholdInvalid = "edge: WithThreshold: threshold must be finite and > 0"
	panicProbeInvalid     = "edge: WithProbeIndex: index must be >= 0 or ProbeMidpoint"
)

// Option configures a Classifier.
type Option func(*Classifier)

// WithThreshold sets the zero-proximity bound (default DefaultThreshold).
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		panic(panicThresholdInvalid)
	}

	return func(c *Classifier) { c.threshold = t }
}

// WithProbeIndex fixes the mesh index checked for zero proximity
// (default ProbeMidpoint).
func WithProbeIndex(i int) Option {
	if i < ProbeMidpoint {
		panic(panicProbeInvalid)
	}

	return func(c *Classifier) { c.probe = i }
}

// Classifier applies the crossing-plus-probe rule. The zero value is not
// usable; construct with NewClassifier.
type Classifier struct {
	threshold float64
	probe     int
}

// NewClassifier returns a Classifier with defaults overridden by opts.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{threshold: DefaultThreshold, probe: ProbeMidpoint}
	for _, set := range opts {
		set(c)
	}

	return c
}

// Threshold returns the configured zero-proximity bound.
func (c *Classifier) Threshold() float64 { return c.threshold }

// ProbeIndex resolves the probe to a mesh index for a mesh of nk points.
func (c *Classifier) ProbeIndex(nk int) int {
	if c.probe == ProbeMidpoint {
		return nk / 2
	}

	return c.probe
}

// Classification holds one flag per band, true for edge bands.
type Classification []bool

// Edges returns the indices of flagged bands, ascending.
func (c Classification) Edges() []int {
	out := make([]int, 0, len(c))
	for b, ok := range c {
		if ok {
			out = append(out, b)
		}
	}

	return out
}

// Classify flags the bands of s.
//
// Implementation:
//   - Stage 1: resolve the probe index against s.NK and pick the present
//     sample closest to it in mesh order (ties go to the lower index), so
//     a skipped probe sample falls back to its neighbour.
//   - Stage 2: per band, scan all samples for min and max and read the
//     probe energy.
//
// Errors: ErrEmptySpectrum, ErrProbeOutOfRange.
// Complexity: O(samples · bands).
func (c *Classifier) Classify(s *spectrum.BandSpectrum) (Classification, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptySpectrum
	}
	probe := c.ProbeIndex(s.NK)
	if probe < 0 || probe >= s.NK {
		return nil, fmt.Errorf("probe %d, nk %d: %w", probe, s.NK, ErrProbeOutOfRange)
	}
	at := nearestSample(s.Samples, probe)

	out := make(Classification, s.Bands())
	var (
		lo, hi float64
		e      float64
	)
	for b := range out {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, smp := range s.Samples {
			e = smp.Energies[b]
			lo = math.Min(lo, e)
			hi = math.Max(hi, e)
		}
		out[b] = lo < 0 && hi > 0 && math.Abs(s.Samples[at].Energies[b]) < c.threshold
	}

	return out, nil
}

// nearestSample returns the position in samples whose mesh Index is closest
// to idx. samples is non-empty and sorted by Index.
func nearestSample(samples []spectrum.Sample, idx int) int {
	best, dist := 0, math.MaxInt
	for i, smp := range samples {
		d := smp.Index - idx
		if d < 0 {
			d = -d
		}
		if d < dist {
			best, dist = i, d
		}
	}

	return best
}

// Classify runs a default Classifier on s.
func Classify(s *spectrum.BandSpectrum) (Classification, error) {
	return NewClassifier().Classify(s)
}
