// Package config provides configuration management for gndex.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Store: backend, path, host, port, user, password, database, ssl_mode,
//     batch_size
//   - Log: level, format, destination
//   - General: game, custom_path, with_color, jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Format (per-command output format)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNDEX_ prefix with underscores for nesting:
//
//	GNDEX_STORE_BACKEND=postgres
//	GNDEX_STORE_HOST=localhost
//	GNDEX_GAME=scarlet-violet
//	GNDEX_LOG_LEVEL=debug
package config

import (
	"runtime"
)

// Config represents the complete gndex configuration.
type Config struct {
	// Store contains settings of the dataset storage.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Game is the default game used when a command does not get one.
	// Empty string means the latest known game.
	Game string `mapstructure:"game" yaml:"game"`

	// CustomPath is a YAML file with user-defined pokemon. If empty,
	// CustomFilePath(HomeDir) is used.
	CustomPath string `mapstructure:"custom_path" yaml:"custom_path"`

	// WithColor enables colored terminal output.
	WithColor bool `mapstructure:"with_color" yaml:"with_color"`

	// Format of the command output, 'text' or 'json'.
	Format string `mapstructure:"-" yaml:"-"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// StoreConfig describes where the dataset lives.
type StoreConfig struct {
	// Backend is either 'sqlite' or 'postgres'.
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Path to the SQLite file. If empty, DBFilePath(HomeDir) is used.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows inserted per statement batch
	// during populate.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Store: StoreConfig{
			Backend:   "sqlite",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gndex",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		Format:     "text",
		WithColor:  true,
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// CustomFile returns the file with user-defined pokemon.
func (c *Config) CustomFile() string {
	if c.CustomPath != "" {
		return c.CustomPath
	}
	return CustomFilePath(c.HomeDir)
}

// DBPath returns the SQLite file used by the store.
func (c *Config) DBPath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return DBFilePath(c.HomeDir)
}
