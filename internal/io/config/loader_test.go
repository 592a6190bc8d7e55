package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "ordercfg.yaml")
	configContent := `
log:
  level: debug
  format: json
jobs_number: 3
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.JobsNumber)
}

func TestLoad_EnvVarOverride_LogLevel(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "ordercfg.yaml")
	configContent := `
log:
  level: info
  format: text
jobs_number: 2
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("ORDERCFG_LOG_LEVEL", "debug")
	t.Setenv("ORDERCFG_LOG_FORMAT", "json")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	// Environment variables override the config file
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	// Values without env overrides come from the config file
	assert.Equal(t, 2, cfg.JobsNumber)
}

func TestLoad_EnvVarOverride_JobsNumber(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "ordercfg.yaml")
	configContent := `
log:
  level: info
  format: text
jobs_number: 2
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("ORDERCFG_JOBS_NUMBER", "7")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.JobsNumber)
}

func TestLoad_NoConfigFile_EnvVarsOnly(t *testing.T) {
	// Keep the default search path away from any real config file.
	tempDir := t.TempDir()
	t.Chdir(tempDir)
	t.Setenv("HOME", tempDir)

	t.Setenv("ORDERCFG_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	// Env var overrides the default
	assert.Equal(t, "warn", cfg.Log.Level)

	// Other values are defaults
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "ordercfg.yaml")
	configContent := `
log:
  level: chatty
  format: xml
jobs_number: -3
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	// Invalid values are rejected by the option layer
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	assert.Error(t, err)
}
