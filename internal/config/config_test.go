package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every variable Load reads at a known state.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("AGORA_ENV_FILE", filepath.Join(dir, "missing.env"))
	for _, k := range []string{"AGORA_API_URL", "AGORA_TOKEN", "AGORA_TIMEOUT", "LOG_LEVEL", "LOG_FILE", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, "", cfg.Token)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, filepath.Join(home, ".agora", "agora.log"), cfg.Log.File)
}

func TestLoadFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("AGORA_API_URL", "https://forum.example.com")
	t.Setenv("AGORA_TOKEN", " tok ")
	t.Setenv("AGORA_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/agora-test.log")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://forum.example.com", cfg.APIURL)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/agora-test.log", cfg.Log.File)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadZeroTimeoutDisablesIt(t *testing.T) {
	isolate(t)
	t.Setenv("AGORA_TIMEOUT", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
}

func TestLoadInvalidTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("AGORA_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGORA_TIMEOUT")
}

func TestLoadNegativeTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("AGORA_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("AGORA_API_URL=https://from-file.example\nAGORA_TIMEOUT=12s\n"), 0600))
	t.Setenv("AGORA_ENV_FILE", envFile)
	// Unset rather than empty so the file can supply them.
	require.NoError(t, os.Unsetenv("AGORA_API_URL"))
	require.NoError(t, os.Unsetenv("AGORA_TIMEOUT"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://from-file.example", cfg.APIURL)
	assert.Equal(t, 12*time.Second, cfg.Timeout)
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("AGORA_API_URL=https://from-file.example\n"), 0600))
	t.Setenv("AGORA_ENV_FILE", envFile)
	t.Setenv("AGORA_API_URL", "https://from-env.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example", cfg.APIURL)
}
