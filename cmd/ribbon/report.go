package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/tbribbon/edge"
	"github.com/katalvlaran/tbribbon/hopping"
	"github.com/katalvlaran/tbribbon/spectrum"
)

// report is the JSON document handed to plotting code.
// Mesh and Reduced always cover the full mesh; Indices, Momenta and Energies
// cover the samples inside the configured window.
type report struct {
	Width     int            `json:"width"`
	Orbitals  int            `json:"orbitals"`
	Bands     int            `json:"bands"`
	NK        int            `json:"nk"`
	Mesh      []float64      `json:"mesh"`
	Reduced   []float64      `json:"reduced"`
	Indices   []int          `json:"indices"`
	Momenta   []float64      `json:"momenta"`
	Energies  [][]float64    `json:"energies"`
	Edge      []bool         `json:"edge"`
	EdgeBands []int          `json:"edge_bands"`
	Skipped   []skippedEntry `json:"skipped"`
	Warnings  []warningEntry `json:"warnings"`
}

type skippedEntry struct {
	Index int     `json:"index"`
	K     float64 `json:"k"`
	Error string  `json:"error"`
}

type warningEntry struct {
	Index    int     `json:"index"`
	K        float64 `json:"k"`
	Residual float64 `json:"residual"`
}

func newReport(width int, m *hopping.Model, res *spectrum.Result, cls edge.Classification, win *spectrum.BandSpectrum) *report {
	r := &report{
		Width:     width,
		Orbitals:  m.Orbitals(),
		Bands:     res.Spectrum.Bands(),
		NK:        len(res.Mesh),
		Mesh:      res.Mesh,
		Reduced:   res.ReducedMesh(),
		Indices:   make([]int, 0, win.Len()),
		Momenta:   win.Momenta(),
		Energies:  make([][]float64, 0, win.Len()),
		Edge:      cls,
		EdgeBands: cls.Edges(),
		Skipped:   make([]skippedEntry, 0, len(res.Skipped)),
		Warnings:  make([]warningEntry, 0, len(res.Warnings)),
	}
	for _, s := range win.Samples {
		r.Indices = append(r.Indices, s.Index)
		r.Energies = append(r.Energies, s.Energies)
	}
	for _, s := range res.Skipped {
		r.Skipped = append(r.Skipped, skippedEntry{Index: s.Index, K: s.K, Error: s.Err.Error()})
	}
	for _, w := range res.Warnings {
		r.Warnings = append(r.Warnings, warningEntry{Index: w.Index, K: w.K, Residual: w.Residual})
	}

	return r
}

// writeJSON encodes v to path, or to the command's writer when path is empty.
func writeJSON(cmd *cli.Command, path string, v any) (err error) {
	var w io.Writer = cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	if path != "" {
		var f *os.File
		if f, err = os.Create(path); err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return nil
}
