package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// No config file anywhere near a temp working directory.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, int64(DefaultSeed), cfg.Seed)
}

func TestLoadExplicitMissingPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "a named config file that does not exist must not be masked by defaults")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datagen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: fixtures\nseed: 7\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fixtures", cfg.OutputDir)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datagen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: fixtures\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fixtures", cfg.OutputDir)
	assert.Equal(t, int64(DefaultSeed), cfg.Seed, "unset seed keeps the default")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datagen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
