package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	cfg := Default()
	require.EqualValues(t, 5, cfg.DefaultPrime)
	require.Equal(t, 20, cfg.DefaultPrecision)
	require.NoError(t, cfg.Validate())
	require.Positive(t, cfg.EffectiveWorkers())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PADIC_PRIME", "7")
	t.Setenv("PADIC_PRECISION", "32")
	t.Setenv("PADIC_WORKERS", "3")
	t.Setenv("PADIC_VERBOSE", "true")

	cfg := FromEnv()
	require.EqualValues(t, 7, cfg.DefaultPrime)
	require.Equal(t, 32, cfg.DefaultPrecision)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, 3, cfg.EffectiveWorkers())
	require.True(t, cfg.Verbose)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, loaded, err := LoadOrDefault("")
	require.NoError(t, err)
	require.False(t, loaded)
	require.EqualValues(t, 5, cfg.DefaultPrime)

	cfg, loaded, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.False(t, loaded)

	path := filepath.Join(t.TempDir(), "padic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaultPrime: 11\ndefaultPrecision: 24\nworkers: 2\n"), 0o600))
	cfg, loaded, err = LoadOrDefault(path)
	require.NoError(t, err)
	require.True(t, loaded)
	require.EqualValues(t, 11, cfg.DefaultPrime)
	require.Equal(t, 24, cfg.DefaultPrecision)
	require.Equal(t, 2, cfg.Workers)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaultPrime: 1\n"), 0o600))
	_, _, err := LoadOrDefault(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DefaultPrecision = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Workers = -1
	require.Error(t, cfg.Validate())
}
