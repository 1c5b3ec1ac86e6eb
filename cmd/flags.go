package cmd

import (
	"github.com/gnames/gndex/pkg/config"
	"github.com/spf13/cobra"
)

// flagOptions converts persistent flags set by the user to config
// options. Flags that were not set do not override the config file.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("format") {
		if s, err := flags.GetString("format"); err == nil {
			res = append(res, config.OptFormat(s))
		}
	}
	if flags.Changed("color") {
		if b, err := flags.GetBool("color"); err == nil {
			res = append(res, config.OptWithColor(b))
		}
	}
	return res
}

// gameFlag adds the --game flag to a command.
func gameFlag(cmd *cobra.Command, game *string) {
	cmd.Flags().StringVarP(game, "game", "g", "",
		"game name or generation number (default: the config game or the latest)")
}

// gameArg returns the game given by the user, falling back to the
// configured game.
func gameArg(game string) string {
	if game != "" {
		return game
	}
	return cfg.Game
}
