package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gndex"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gndex by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory where the local dataset is kept.
// Returns ~/.local/share/gndex by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gndex/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gndex/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CustomFilePath returns the path to the custom.yaml file.
// Returns ~/.config/gndex/custom.yaml by default.
func CustomFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "custom.yaml")
}

// DBFilePath returns the default SQLite dataset location.
func DBFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "resource.db")
}
