package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptStoreBackend sets the storage backend.
// Valid values: "sqlite", "postgres".
func OptStoreBackend(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Store.Backend", s) {
			c.Store.Backend = s
		}
	}
}

// OptStorePath sets the SQLite dataset file.
func OptStorePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Path", s) {
			c.Store.Path = s
		}
	}
}

// OptStoreHost sets the PostgreSQL server hostname or IP address.
func OptStoreHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Host", s) {
			c.Store.Host = s
		}
	}
}

// OptStorePort sets the PostgreSQL server port number.
func OptStorePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Store Port", i) {
			c.Store.Port = i
		}
	}
}

// OptStoreUser sets the PostgreSQL database username.
func OptStoreUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store User", s) {
			c.Store.User = s
		}
	}
}

// OptStorePassword sets the PostgreSQL database password.
func OptStorePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Password", s) {
			c.Store.Password = s
		}
	}
}

// OptStoreDatabase sets the PostgreSQL database name.
func OptStoreDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Database", s) {
			c.Store.Database = s
		}
	}
}

// OptStoreSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptStoreSSLMode(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Store.SSLMode", s) {
			c.Store.SSLMode = s
		}
	}
}

// OptStoreBatchSize sets the number of rows per insert batch.
func OptStoreBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Store.BatchSize = i
		}
	}
}

// OptGame sets the default game. It is not validated here, because
// known games come from the dataset.
func OptGame(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		c.Game = s
	}
}

// OptCustomPath sets the file with user-defined pokemon.
func OptCustomPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Custom Path", s) {
			c.CustomPath = s
		}
	}
}

// OptWithColor toggles colored output.
func OptWithColor(b bool) Option {
	return func(c *Config) {
		c.WithColor = b
	}
}

// OptFormat sets output format.
// Valid values: "text", "json".
// Runtime-only field - not in ToOptions().
func OptFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Format", s) {
			c.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, data, and log locations.
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
