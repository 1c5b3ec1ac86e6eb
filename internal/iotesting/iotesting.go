// Package iotesting provides shared test utilities: a small embedded
// dataset and an in-memory store over it.
// This is an internal package for test infrastructure only.
package iotesting

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gndex/pkg/config"
	"github.com/gnames/gndex/pkg/schema"
	"gopkg.in/yaml.v3"
)

// DexYAML is a dump of a tiny dataset covering all generations.
//
//go:embed testdata/dex.yaml
var DexYAML []byte

// Dataset decodes the embedded dataset.
func Dataset(t *testing.T) *schema.Dataset {
	t.Helper()

	var res schema.Dataset
	if err := yaml.Unmarshal(DexYAML, &res); err != nil {
		t.Fatalf("Failed to decode test dataset: %v", err)
	}
	return &res
}

// WriteDump writes the embedded dataset to a temporary directory and
// returns the path to the file.
func WriteDump(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dex.yaml")
	if err := os.WriteFile(path, DexYAML, 0644); err != nil {
		t.Fatalf("Failed to write test dump: %v", err)
	}
	return path
}

// SetupTempHome creates a temporary home directory for a test, so that
// config, data and log files never touch the real ones.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    home := iotesting.SetupTempHome(t)
//	    cfg := config.New()
//	    cfg.Update([]config.Option{config.OptHomeDir(home)})
//	}
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// SQLiteConfig returns a configuration that keeps the dataset in a
// temporary SQLite file.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptStoreBackend("sqlite"),
		config.OptStorePath(filepath.Join(t.TempDir(), "dex.db")),
	})
	return cfg
}
