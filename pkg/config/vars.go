package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "ordercfg"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/ordercfg by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ConfigFilePath returns the full path to the ordercfg.yaml file.
// Returns ~/.config/ordercfg/ordercfg.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), AppName+".yaml")
}
