package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5080/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
}

func TestStateDBPath(t *testing.T) {
	cfg := &Config{DataDir: filepath.Join("var", "lib")}
	assert.Equal(t, filepath.Join("var", "lib", "coursekeeper.db"), cfg.StateDBPath())
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("COURSEKEEPER_API_URL", "https://api.example.com/v1")
	t.Setenv("COURSEKEEPER_REQUEST_TIMEOUT", "5s")
	t.Setenv("COURSEKEEPER_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep their defaults.
	assert.Equal(t, ".", cfg.DataDir)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("COURSEKEEPER_DATA_DIR="+dir+"\nCOURSEKEEPER_ONLINE_CHECK_INTERVAL=1m\n"), 0o600))

	oldArgs := os.Args
	os.Args = []string{"coursekeeper", "-e", envFile}
	t.Cleanup(func() {
		os.Args = oldArgs
		os.Unsetenv("COURSEKEEPER_DATA_DIR")
		os.Unsetenv("COURSEKEEPER_ONLINE_CHECK_INTERVAL")
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, time.Minute, cfg.OnlineCheckInterval)
}

func TestLoadConfig_MissingNamedEnvFile(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"coursekeeper", "-e", filepath.Join(t.TempDir(), "absent.env")}
	t.Cleanup(func() { os.Args = oldArgs })

	_, err := LoadConfig()
	require.Error(t, err, "an explicitly named env file must exist")
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("COURSEKEEPER_API_URL", "https://env.example.com")

	oldArgs := os.Args
	os.Args = []string{"coursekeeper", "-a", "https://flag.example.com", "-l", "warn"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}
