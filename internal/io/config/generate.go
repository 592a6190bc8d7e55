package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lipidtools/ordercfg/pkg/config"
	"gopkg.in/yaml.v3"
)

// GetDefaultConfigPath returns the full path to the default config
// file, ~/.config/ordercfg/ordercfg.yaml.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return config.ConfigFilePath(homeDir), nil
}

// GenerateDefaultConfig creates a documented default config file at
// the platform-specific location. Returns the path where the config
// was created, or error if generation fails.
// Does NOT overwrite existing config files.
func GenerateDefaultConfig() (string, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaults := config.Defaults()

	yamlContent := `# ordercfg Configuration File
# This file was auto-generated. Edit as needed.
#
# Configuration precedence (highest to lowest):
#   1. CLI flags (--verbose, --quiet, --jobs)
#   2. Environment variables (ORDERCFG_*)
#   3. This config file
#   4. Built-in defaults

log:
  # 'debug', 'info', 'warn' or 'error'
  level: ` + defaults.Log.Level + `
  # 'json' or 'text'
  format: ` + defaults.Log.Format + `

# Number of concurrent workers for batch checks.
jobs_number: ` + fmt.Sprintf("%d", defaults.JobsNumber) + `
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// ConfigFileExists checks if a config file exists at the default location.
func ConfigFileExists() (bool, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return false, err
	}

	_, err = os.Stat(configPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ValidateGeneratedConfig reads back a generated config file.
// Used for testing to ensure generated YAML is valid.
func ValidateGeneratedConfig(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return nil
}
