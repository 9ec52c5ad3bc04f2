package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetForTest removes key for the duration of the test and restores it after.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "LOG_FORMAT", "LOG_PREFIX", "TERMINAL_MASK_PIN", "TERMINAL_COLOR"} {
		unsetForTest(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	require.NotNil(t, cfg.Log)
	assert.Equal(t, 4, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "[atm]", cfg.Log.Prefix)
	require.NotNil(t, cfg.Terminal)
	assert.True(t, cfg.Terminal.MaskPin)
	assert.True(t, cfg.Terminal.Color)
}

func TestLoadFromEnvFile(t *testing.T) {
	unsetForTest(t, "LOG_LEVEL")
	unsetForTest(t, "TERMINAL_COLOR")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=-4\nTERMINAL_COLOR=false\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -4, cfg.Log.Level)
	assert.False(t, cfg.Terminal.Color)
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_FORMAT=text\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("TERMINAL_MASK_PIN", "not-a-bool")

	_, err := Load()
	assert.Error(t, err)
}

func TestFindEnvFile(t *testing.T) {
	_, err := FindEnvFile("definitely-not-here.env")
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "found.env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	got, err := FindEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestLoadIgnoresParentEnvFile(t *testing.T) {
	unsetForTest(t, "LOG_PREFIX")

	parent := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(parent, ".env"), []byte("LOG_PREFIX=[parent]\n"), 0o600))
	child := filepath.Join(parent, "work")
	require.NoError(t, os.Mkdir(child, 0o700))
	t.Chdir(child)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "[atm]", cfg.Log.Prefix)
}
