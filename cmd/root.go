/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/internal/iofs"
	"github.com/gnames/gndex/internal/iologger"
	app "github.com/gnames/gndex/pkg"
	"github.com/gnames/gndex/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
// A fresh tree is built on every call, so tests do not share flag state.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gndex",
		Short:   "Generation-aware Pokémon battle data",
		Long: `gndex answers questions about Pokémon battle mechanics from a local
dataset. Pokémon, moves and type charts are shown the way they were in
a chosen game or generation.

Commands:
  - pokemon, move, ability, type: look up one record
  - match: compare defenders with an attacker
  - coverage: offensive and defensive type coverage of a roster
  - resource: list known names
  - create, populate, optimize: build the local dataset

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNDEX_*)
  3. Config file (~/.config/gndex/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (store.backend → GNDEX_STORE_BACKEND).

    GNDEX_STORE_BACKEND      sqlite or postgres
    GNDEX_STORE_PATH         SQLite file
    GNDEX_STORE_HOST         PostgreSQL host
    GNDEX_GAME               default game or generation
    GNDEX_CUSTOM_PATH        file with user-defined pokemon
    GNDEX_LOG_LEVEL          debug, info, warn, error

  See 'go doc github.com/gnames/gndex/pkg/config' for the complete list.`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gndex version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gndex")

	rootCmd.PersistentFlags().String("format", "",
		"output format: text or json")
	rootCmd.PersistentFlags().Bool("color", true,
		"colored output, use --color=false to turn it off")

	rootCmd.AddCommand(
		getPokemonCmd(),
		getMoveCmd(),
		getAbilityCmd(),
		getTypeCmd(),
		getMatchCmd(),
		getCoverageCmd(),
		getResourceCmd(),
		getCreateCmd(),
		getPopulateCmd(),
		getOptimizeCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, flagOptions(cmd)...)
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// started above.
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initEnvVars binds every allowed environment variable explicitly.
// They match the fields included in config.ToOptions().
func initEnvVars(v *viper.Viper) {
	envs := []struct{ key, env string }{
		{"store.backend", "GNDEX_STORE_BACKEND"},
		{"store.path", "GNDEX_STORE_PATH"},
		{"store.host", "GNDEX_STORE_HOST"},
		{"store.port", "GNDEX_STORE_PORT"},
		{"store.user", "GNDEX_STORE_USER"},
		{"store.password", "GNDEX_STORE_PASSWORD"},
		{"store.database", "GNDEX_STORE_DATABASE"},
		{"store.ssl_mode", "GNDEX_STORE_SSL_MODE"},
		{"store.batch_size", "GNDEX_STORE_BATCH_SIZE"},

		{"log.level", "GNDEX_LOG_LEVEL"},
		{"log.format", "GNDEX_LOG_FORMAT"},
		{"log.destination", "GNDEX_LOG_DESTINATION"},

		{"game", "GNDEX_GAME"},
		{"custom_path", "GNDEX_CUSTOM_PATH"},
		{"with_color", "GNDEX_WITH_COLOR"},
		{"jobs_number", "GNDEX_JOBS_NUMBER"},
	}
	for _, e := range envs {
		_ = v.BindEnv(e.key, e.env)
	}
}
