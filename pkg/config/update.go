package config

import (
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
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
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Format).
func (c *Config) ToOptions() []Option {
	var res []Option
	strOpts := []struct {
		val string
		opt func(string) Option
	}{
		{c.Store.Backend, OptStoreBackend},
		{c.Store.Path, OptStorePath},
		{c.Store.Host, OptStoreHost},
		{c.Store.User, OptStoreUser},
		{c.Store.Password, OptStorePassword},
		{c.Store.Database, OptStoreDatabase},
		{c.Store.SSLMode, OptStoreSSLMode},
		{c.Game, OptGame},
		{c.CustomPath, OptCustomPath},
		{c.Log.Format, OptLogFormat},
		{c.Log.Level, OptLogLevel},
		{c.Log.Destination, OptLogDestination},
	}
	for _, v := range strOpts {
		if v.val != "" {
			res = append(res, v.opt(v.val))
		}
	}

	intOpts := []struct {
		val int
		opt func(int) Option
	}{
		{c.Store.Port, OptStorePort},
		{c.Store.BatchSize, OptStoreBatchSize},
		{c.JobsNumber, OptJobsNumber},
	}
	for _, v := range intOpts {
		if v.val > 0 {
			res = append(res, v.opt(v.val))
		}
	}

	res = append(res, OptWithColor(c.WithColor))
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Store.Backend": {"sqlite": s, "postgres": s},
		"Store.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Format":          {"text": s, "json": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}

	var lines []string
	for _, v := range slices.Sorted(maps.Keys(data[name])) {
		lines = append(lines, "  * "+v)
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
