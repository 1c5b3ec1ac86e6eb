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
	"github.com/spf13/cobra"
)

// getMoveCmd returns the move command.
func getMoveCmd() *cobra.Command {
	var game string

	moveCmd := &cobra.Command{
		Use:   "move <name>",
		Short: "Show a move as it was in a game",
		Long: `Show type, power, accuracy and PP of a move in a game or generation.

Examples:
  gndex move quick-attack
  gndex move bite --game red-blue`,
		Args: cobra.ExactArgs(1),
		RunE: withErrorMessage(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, game)
			if err != nil {
				return err
			}
			defer s.Close()

			m, err := s.dex.Move(ctx, args[0], s.gen)
			if err != nil {
				return err
			}
			return s.view.Move(m)
		}),
	}

	gameFlag(moveCmd, &game)
	return moveCmd
}

// getAbilityCmd returns the ability command. Abilities are the same in
// every generation, so it has no --game flag.
func getAbilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ability <name>",
		Short: "Show an ability",
		Args:  cobra.ExactArgs(1),
		RunE: withErrorMessage(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, "")
			if err != nil {
				return err
			}
			defer s.Close()

			a, err := s.dex.Ability(ctx, args[0])
			if err != nil {
				return err
			}
			return s.view.Ability(a)
		}),
	}
}

// getTypeCmd returns the type command.
func getTypeCmd() *cobra.Command {
	var game string

	typeCmd := &cobra.Command{
		Use:   "type <name>",
		Short: "Show offense and defense multipliers of a type",
		Long: `Show which types a type is strong or weak against in a game or
generation. Types that did not exist yet are absent.

Examples:
  gndex type ghost --game red-blue
  gndex type fairy`,
		Args: cobra.ExactArgs(1),
		RunE: withErrorMessage(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, game)
			if err != nil {
				return err
			}
			defer s.Close()

			t, err := s.dex.Type(ctx, args[0], s.gen)
			if err != nil {
				return err
			}
			return s.view.Type(t)
		}),
	}

	gameFlag(typeCmd, &game)
	return typeCmd
}
