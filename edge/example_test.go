package edge_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tbribbon/edge"
	"github.com/katalvlaran/tbribbon/spectrum"
)

// ExampleClassifier_Classify flags the band that crosses zero at the mesh center.
func ExampleClassifier_Classify() {
	mesh, _ := spectrum.Mesh(9, spectrum.MeshClosed)
	samples := make([]spectrum.Sample, len(mesh))
	for i, k := range mesh {
		samples[i] = spectrum.Sample{Index: i, K: k, Energies: []float64{-3, math.Sin(k - math.Pi), 3}}
	}
	s, _ := spectrum.NewBandSpectrum(len(mesh), samples)

	c, err := edge.NewClassifier(edge.WithThreshold(0.1)).Classify(s)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c, c.Edges())
	// Output: [false true false] [1]
}
