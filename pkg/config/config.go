// Package config provides configuration management for the ordercfg
// tool itself (logging, parallelism). It does not describe analysis
// input files; those are modeled by pkg/input.
//
// This package has no I/O dependencies (no file operations, no
// network calls).
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > ordercfg.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with a warning - config remains in valid state
//
// # Environment Variables
//
// Use the ORDERCFG_ prefix with underscores for nesting:
//
//	ORDERCFG_LOG_LEVEL=debug
//	ORDERCFG_LOG_FORMAT=text
//	ORDERCFG_JOBS_NUMBER=8
package config

import "runtime"

// Config represents the complete ordercfg tool configuration.
type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers used when
	// checking many input files at once. Default value is set
	// according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" yaml:"level"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	return &Config{
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		JobsNumber: runtime.NumCPU(),
	}
}

// Defaults returns the built-in configuration, untouched by any
// source. It is what the loader falls back to when no config file
// exists.
func Defaults() *Config {
	return New()
}
