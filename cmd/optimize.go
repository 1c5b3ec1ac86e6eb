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
	"github.com/gnames/gn"
	"github.com/gnames/gndex/internal/iodb"
	"github.com/gnames/gndex/internal/iooptimize"
	"github.com/spf13/cobra"
)

// getOptimizeCmd returns the optimize command.
func getOptimizeCmd() *cobra.Command {
	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Tidy a populated dataset",
		Long: `Remove rows that reference missing records and refresh statistics
of the database engine.

This command:
  1. Deletes change, learnset and ability rows of unknown moves,
     types, abilities or pokemon
  2. Runs VACUUM and ANALYZE

Run it after 'gndex populate'.

Examples:
  gndex optimize`,
		Args: cobra.NoArgs,
		RunE: withErrorMessage(func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			op := iodb.New(cfg)
			if err := op.Connect(ctx); err != nil {
				return err
			}
			defer op.Close()

			gn.Info("Connected to <em>%s</em>", op.Target())
			return iooptimize.New(op).Optimize(ctx)
		}),
	}
	return optimizeCmd
}
