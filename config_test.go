package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 15, cfg.MaxDepth)
	assert.Equal(t, 2500, cfg.MaxIterations)
	assert.Zero(t, cfg.MaxWorkers)
	assert.Equal(t, "Exitus-1", cfg.ExitusName)
	assert.Equal(t, "-", cfg.NegationPrefix)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solver.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_depth: 7\nmax_workers: 2\nverbose: true\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.MaxDepth)
		assert.Equal(t, 2, cfg.MaxWorkers)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, 2500, cfg.MaxIterations, "unset keys keep defaults")
	})

	t.Run("invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solver.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_depth: 0\nnegation_prefix: \"\"\n"), 0o644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_depth")
		assert.Contains(t, err.Error(), "negation_prefix")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solver.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_depth: [\n"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
