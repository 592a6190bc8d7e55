package config

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Used for round-tripping ordercfg.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option

	if s := c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s := c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if i := c.JobsNumber; i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		slog.Warn("config value has to be a positive number, ignoring",
			"option", name, "value", i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	data := map[string]map[string]struct{}{
		"Log.Level":  {"debug": {}, "info": {}, "warn": {}, "error": {}},
		"Log.Format": {"json": {}, "text": {}},
	}
	if _, ok := data[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(data[name]))
	slog.Warn("config value is not supported, ignoring",
		"option", name, "value", val,
		"valid", strings.Join(vals, ", "))
	return false
}
