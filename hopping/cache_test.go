package hopping_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tbribbon/hopping"
	"github.com/stretchr/testify/require"
)

// TestCacheReusesParsedModel loads once per file version.
func TestCacheReusesParsedModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model_hr.dat")
	require.NoError(t, os.WriteFile(path, []byte("hdr\n1\n1\n1\n0 0 0 1 1 1 0\n"), 0o644))

	c, err := hopping.NewCache(0)
	require.NoError(t, err)
	var reads int
	hopping.SetCacheLoader(c, func(p string) (*hopping.Model, error) {
		reads++
		return hopping.Load(p)
	})

	first, err := c.Load(path)
	require.NoError(t, err)
	second, err := c.Load(path)
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, reads)
	require.Equal(t, 1, c.Len())

	// a rewritten file is a new version
	require.NoError(t, os.WriteFile(path, []byte("hdr\n1\n1\n1\n0 0 0 1 1 2.5 0\n"), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))
	third, err := c.Load(path)
	require.NoError(t, err)
	require.NotSame(t, first, third)
	require.Equal(t, 2, reads)
}

// TestCacheMissingFile reports ErrFileNotFound without caching.
func TestCacheMissingFile(t *testing.T) {
	c, err := hopping.NewCache(2)
	require.NoError(t, err)

	_, err = c.Load(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, hopping.ErrFileNotFound)
	require.Equal(t, 0, c.Len())
}
