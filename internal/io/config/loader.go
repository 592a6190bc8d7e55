// Package config provides I/O operations for loading the tool
// configuration from files and environment variables.
// This is an impure package that handles file system operations.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/lipidtools/ordercfg/pkg/config"
	"github.com/spf13/viper"
)

// Load reads the tool configuration from a YAML file and environment
// variables. If configPath is empty, it searches default locations:
//   - ./ordercfg.yaml
//   - ~/.config/ordercfg/ordercfg.yaml
//
// Environment variables with the ORDERCFG_ prefix override file
// values (ORDERCFG_LOG_LEVEL, ORDERCFG_JOBS_NUMBER, ...). When no
// file is found, built-in defaults with env overrides are returned.
func Load(configPath string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(strings.ToUpper(config.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults registered so env-only overrides unmarshal cleanly.
	defaults := config.Defaults()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("jobs_number", defaults.JobsNumber)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(config.AppName)
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(config.ConfigDir(homeDir))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit config path that cannot be read is an error;
			// a missing file on the default search path is not.
			if configPath != "" {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Normalize through the option layer so invalid values are
	// rejected and defaults kept.
	res := config.New()
	res.Update(cfg.ToOptions())
	return res, nil
}
