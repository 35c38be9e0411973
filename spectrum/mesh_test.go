package spectrum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tbribbon/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshClosedIncludesBothEnds(t *testing.T) {
	k, err := spectrum.Mesh(4, spectrum.MeshClosed)
	require.NoError(t, err)
	require.Len(t, k, 4)
	assert.Equal(t, 0.0, k[0])
	assert.InDelta(t, 2*math.Pi/3, k[1], 1e-15)
	assert.InDelta(t, 2*math.Pi, k[3], 1e-15)
}

func TestMeshHalfOpen(t *testing.T) {
	k, err := spectrum.Mesh(4, spectrum.MeshHalfOpen)
	require.NoError(t, err)
	want := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	for i := range want {
		assert.InDelta(t, want[i], k[i], 1e-15)
	}
}

func TestMeshSinglePoint(t *testing.T) {
	for _, kind := range []spectrum.MeshKind{spectrum.MeshClosed, spectrum.MeshHalfOpen} {
		k, err := spectrum.Mesh(1, kind)
		require.NoError(t, err)
		require.Equal(t, []float64{0}, k)
	}
}

func TestMeshInvalid(t *testing.T) {
	_, err := spectrum.Mesh(0, spectrum.MeshClosed)
	require.ErrorIs(t, err, spectrum.ErrInvalidMesh)

	_, err = spectrum.Mesh(3, spectrum.MeshKind(9))
	require.ErrorIs(t, err, spectrum.ErrInvalidMesh)
}

func TestParseMeshKind(t *testing.T) {
	k, err := spectrum.ParseMeshKind("half_open")
	require.NoError(t, err)
	require.Equal(t, spectrum.MeshHalfOpen, k)
	require.Equal(t, "half_open", k.String())

	k, err = spectrum.ParseMeshKind("")
	require.NoError(t, err)
	require.Equal(t, spectrum.MeshClosed, k)

	_, err = spectrum.ParseMeshKind("spiral")
	require.Error(t, err)
}

func TestReduced(t *testing.T) {
	assert.InDelta(t, 0.5, spectrum.Reduced(math.Pi), 1e-15)
}
