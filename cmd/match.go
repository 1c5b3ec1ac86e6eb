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
	"github.com/gnames/gndex/internal/iofs"
	"github.com/gnames/gndex/pkg/coverage"
	"github.com/gnames/gndex/pkg/matchup"
	"github.com/spf13/cobra"
)

// getMatchCmd returns the match command.
func getMatchCmd() *cobra.Command {
	var (
		game     string
		stabOnly bool
		verbose  bool
	)

	matchCmd := &cobra.Command{
		Use:   "match <defender>... <attacker>",
		Short: "Compare up to six defenders with an attacker",
		Long: `Show weaknesses of each defender and how moves of both sides
perform against each other. The last argument is the attacker.

Without --verbose only moves that deal at least double damage are
listed. Status moves are never listed.

Examples:
  gndex match flygon blaziken
  gndex match flygon goodra blaziken --game x-y --stab-only`,
		Args: cobra.RangeArgs(2, matchup.MaxDefenders+1),
		RunE: withErrorMessage(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, game)
			if err != nil {
				return err
			}
			defer s.Close()

			opts := matchup.Options{StabOnly: stabOnly}
			if !verbose {
				opts.MinMultiplier = 2
			}
			last := len(args) - 1
			res, err := matchup.Match(ctx, s.dex, args[:last], args[last], s.gen, opts)
			if err != nil {
				return err
			}
			return s.view.Matchup(res)
		}),
	}

	gameFlag(matchCmd, &game)
	matchCmd.Flags().BoolVarP(&stabOnly, "stab-only", "s", false,
		"list only moves with the same-type attack bonus")
	matchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"list all damaging moves")

	return matchCmd
}

// getCoverageCmd returns the coverage command.
func getCoverageCmd() *cobra.Command {
	var (
		game   string
		roster string
	)

	coverageCmd := &cobra.Command{
		Use:   "coverage <pokemon>...",
		Short: "Show type coverage of a roster",
		Long: `For every type show roster members whose typing deals at least
double damage to it, and members that take at most half damage from it.

The roster comes from arguments, from a file with one pokemon per line,
or from both.

Examples:
  gndex coverage blaziken flygon goodra
  gndex coverage --file team.txt --game sun-moon`,
		RunE: withErrorMessage(func(cmd *cobra.Command, args []string) error {
			names := args
			if roster != "" {
				list, err := iofs.ReadList(roster)
				if err != nil {
					return err
				}
				names = append(names, list...)
			}

			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, game)
			if err != nil {
				return err
			}
			defer s.Close()

			tbl, err := coverage.Compute(ctx, s.dex, names, s.gen)
			if err != nil {
				return err
			}
			return s.view.Coverage(tbl)
		}),
	}

	gameFlag(coverageCmd, &game)
	coverageCmd.Flags().StringVarP(&roster, "file", "f", "",
		"file with roster pokemon, one per line")

	return coverageCmd
}
