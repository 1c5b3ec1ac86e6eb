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
	"github.com/gnames/gndex/internal/ioview"
	"github.com/spf13/cobra"
)

// getPokemonCmd returns the pokemon command.
func getPokemonCmd() *cobra.Command {
	var (
		game      string
		evolution bool
		moves     bool
	)

	pokemonCmd := &cobra.Command{
		Use:   "pokemon <name>",
		Short: "Show a pokemon as it was in a game",
		Long: `Show typing, abilities and base stats of a pokemon in a game or
generation. The name can also be a pokemon id.

Examples:
  gndex pokemon blaziken
  gndex pokemon clefairy --game red-blue
  gndex pokemon goodra -g 6 --evolution --moves`,
		Args: cobra.ExactArgs(1),
		RunE: withErrorMessage(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, game)
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := s.dex.Pokemon(ctx, args[0], s.gen)
			if err != nil {
				return err
			}
			card := ioview.PokemonCard{Pokemon: p}
			if evolution {
				if card.Evolution, err = s.dex.Evolution(ctx, p); err != nil {
					return err
				}
			}
			if moves {
				if card.Moves, err = s.dex.Moves(ctx, p); err != nil {
					return err
				}
			}
			return s.view.Pokemon(card)
		}),
	}

	gameFlag(pokemonCmd, &game)
	pokemonCmd.Flags().BoolVarP(&evolution, "evolution", "e", false,
		"show the evolution chain")
	pokemonCmd.Flags().BoolVarP(&moves, "moves", "m", false,
		"show moves the pokemon learns in the game")

	return pokemonCmd
}
