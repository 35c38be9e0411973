package spectrum_test

import (
	"testing"

	"github.com/katalvlaran/tbribbon/hopping"
	"github.com/katalvlaran/tbribbon/matrix"
	"github.com/stretchr/testify/require"
)

// block builds an n×n block from row-major data.
func block(t testing.TB, n int, data ...complex128) *matrix.CDense {
	t.Helper()
	m, err := matrix.NewCDenseFrom(n, n, data)
	require.NoError(t, err)
	return m
}

// twoBandModel is the end-to-end model: on-site diag(1,-1) and a symmetric
// x-bond [[0,.5],[.5,0]] in both directions. Each cell has the spectrum
// ±sqrt(1+cos²k).
func twoBandModel(t testing.TB) *hopping.Model {
	t.Helper()
	bond := block(t, 2, 0, 0.5, 0.5, 0)
	m, err := hopping.NewModel(2, map[hopping.Displacement]*matrix.CDense{
		{DX: 0, DY: 0}:  block(t, 2, 1, 0, 0, -1),
		{DX: 1, DY: 0}:  bond,
		{DX: -1, DY: 0}: bond,
	})
	require.NoError(t, err)
	return m
}

// chainModel is a single-orbital model with a complex x-bond, a y-bond and
// a diagonal bond, each listed in both directions.
func chainModel(t testing.TB) *hopping.Model {
	t.Helper()
	x := block(t, 1, 0.8+0.3i)
	y := block(t, 1, -1)
	xy := block(t, 1, 0.2i)
	m, err := hopping.NewModel(1, map[hopping.Displacement]*matrix.CDense{
		{DX: 0, DY: 0}:   block(t, 1, 0.1),
		{DX: 1, DY: 0}:   x,
		{DX: -1, DY: 0}:  x.ConjTranspose(),
		{DX: 0, DY: 1}:   y,
		{DX: 0, DY: -1}:  y,
		{DX: 1, DY: 1}:   xy,
		{DX: -1, DY: -1}: xy.ConjTranspose(),
	})
	require.NoError(t, err)
	return m
}
